package rest

import (
	"fmt"
	"net/http"
)

// StatusError is returned for any non-2xx response. Error() mirrors what a
// browser client would surface: the raw body when present, the standard
// status text otherwise, and a bare "HTTP <code>" as the last resort. It
// implements port.BodyError so the usecases can decode structured
// validation bodies.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	if txt := http.StatusText(e.Code); txt != "" {
		return txt
	}
	return fmt.Sprintf("HTTP %d", e.Code)
}

// StatusCode returns the HTTP status of the failed request.
func (e *StatusError) StatusCode() int { return e.Code }

// ResponseBody returns the raw response body.
func (e *StatusError) ResponseBody() string { return e.Body }
