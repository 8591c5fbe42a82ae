package api

type ApiResStatusEnum string

const (
	ApiResStatusOk               ApiResStatusEnum = "OK"
	ApiResStatusRequestBodyError ApiResStatusEnum = "REQUEST_BODY_ERROR"
	ApiResStatusInvalidRequest   ApiResStatusEnum = "INVALID_REQUEST"
	ApiResStatusNotFound         ApiResStatusEnum = "NOT_FOUND"
	ApiResStatusError            ApiResStatusEnum = "ERROR"
)

// Envelope for all json API responses. Data is set on success, the error
// fields on failure.
type ApiResponseWrapper[T any] struct {
	Status       ApiResStatusEnum `json:"status"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	ErrorDetails string           `json:"errorDetails,omitempty"`
	Data         T                `json:"data"`
}
