// Package handler is the HTTP layer right after the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and writes the JSON responses.
package handler
