package repository

import (
	"github.com/deppfellow/items-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Catalog *CatalogRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepository(s),
	}
}
