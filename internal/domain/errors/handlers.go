package errors

// ErrorResponse is the error body returned by the remote API (FastAPI style).
// Detail is usually a string; validation failures return a list of objects.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// DetailText flattens Detail into a single message.
func (r *ErrorResponse) DetailText() string {
	switch d := r.Detail.(type) {
	case string:
		return d
	case []any:
		for _, item := range d {
			if obj, ok := item.(map[string]any); ok {
				if msg, ok := obj["msg"].(string); ok {
					return msg
				}
			}
		}
	}

	return ""
}
