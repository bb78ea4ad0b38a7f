// Package repository holds the data sources the service layer reads from.
//
// The catalog is static: the API keeps no state between requests.
package repository
