package errmsg

// StatusError pairs an HTTP status with the message rendered to the client.
type StatusError struct {
	StatusCode int
	Message    string
}

func NewStatusError(statusCode int, message string) StatusError {
	return StatusError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (se StatusError) Error() string {
	return se.Message
}
