// internal/api/types/response.go
package types

// ListResponse defines a generic structure for list API responses.
// T represents the type of data contained in the 'Data' slice.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
