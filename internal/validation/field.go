package validation

// FieldError reports a user-input failure on a single field. Handlers map
// it to a 422 response with the field name attached.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

func Error(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
