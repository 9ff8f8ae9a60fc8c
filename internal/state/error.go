package state

// APIError is the normalized error body every failure action carries.
// The zero value means "no error": presence is decided by the Message
// field, never by comparing the whole struct, so extra server fields can
// be added without breaking callers.
type APIError struct {
	Status  string            `json:"status,omitempty"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// IsZero reports whether the error represents "no error".
func (e APIError) IsZero() bool {
	return e.Message == ""
}

func (e APIError) Error() string {
	return e.Message
}
