// Package response is the uniform envelope every endpoint answers with.
// Success bodies always carry a data key (null for operations with no
// payload); failure bodies carry an optional machine-readable error block.
package response

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

type Error struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorBody `json:"error,omitempty"`
}

func OK(message string, data any) Success {
	return Success{Success: true, Message: message, Data: data}
}

func OKWithMeta(message string, data any, meta Meta) Success {
	return Success{Success: true, Message: message, Data: data, Meta: &meta}
}

func Err(message, code string) Error {
	return Error{Message: message, Error: &ErrorBody{Code: code}}
}

func ErrDetailed(message, code string, details any) Error {
	return Error{Message: message, Error: &ErrorBody{Code: code, Details: details}}
}
