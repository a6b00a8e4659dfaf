package errmsg

import "net/http"

func InternalServerError(err error) StatusError {
	return NewStatusError(
		http.StatusInternalServerError,
		err.Error(),
	)
}

type _InternalServerError struct {
	Error string `json:"error" example:"server selection error: context deadline exceeded"`
}
