package adminsdk

import "fmt"

// APIError is the client-side form of an ErrorResponse.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("admin api: %s (%s)", e.Description, e.Code)
	}
	return fmt.Sprintf("admin api: %s (http %d)", e.Code, e.StatusCode)
}
