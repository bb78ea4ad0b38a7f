// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated requests from the handler, applies defaults and shapes the
// responses, and reads the catalog through the repository layer.
package service
