package models

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
