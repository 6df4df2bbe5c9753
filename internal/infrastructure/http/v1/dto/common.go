// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// SuccessResponse is a generic success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IDResponse returns the identifier of a created resource.
type IDResponse struct {
	ID int64 `json:"id"`
}

// DataResponse wraps a payload with a status and human message.
type DataResponse struct {
	Data    any    `json:"data"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
