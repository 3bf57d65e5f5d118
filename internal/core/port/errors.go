package port

import (
	"encoding/json"
	"errors"
)

// BodyError is implemented by gateway errors that carry the raw response
// body of a failed request. The usecases use it to route structured
// validation errors back to form fields without depending on the HTTP
// adapter.
type BodyError interface {
	error
	StatusCode() int
	ResponseBody() string
}

// APIError is a decoded backend error body. The backend reports either a
// single message (Detail or ErrorMsg), form-wide messages (NonField,
// AdContent) or per-field validation messages (Fields, keyed by the
// serializer field name).
type APIError struct {
	Detail    string
	ErrorMsg  string
	NonField  []string
	AdContent []string
	Fields    map[string][]string
}

// ParseAPIError extracts the structured error body from err. The second
// return is false when err carries no body or the body is not a JSON
// object; callers then fall back to the raw message.
func ParseAPIError(err error) (*APIError, bool) {
	var be BodyError
	if !errors.As(err, &be) {
		return nil, false
	}
	var raw map[string]json.RawMessage
	if jsonErr := json.Unmarshal([]byte(be.ResponseBody()), &raw); jsonErr != nil {
		return nil, false
	}
	out := &APIError{Fields: map[string][]string{}}
	for key, val := range raw {
		switch key {
		case "detail":
			_ = json.Unmarshal(val, &out.Detail)
		case "error":
			_ = json.Unmarshal(val, &out.ErrorMsg)
		case "non_field_errors":
			out.NonField = decodeMessages(val)
		case "ad_content":
			out.AdContent = decodeMessages(val)
		default:
			if msgs := decodeMessages(val); len(msgs) > 0 {
				out.Fields[key] = msgs
			}
		}
	}
	return out, true
}

// decodeMessages accepts either a JSON array of strings or a single string.
func decodeMessages(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}
