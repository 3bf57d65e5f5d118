package domain

// FieldErrors maps a form field key to the message shown next to it. Only
// the first message recorded per field is kept, matching inline slots that
// display a single error each.
type FieldErrors map[string]string

// Add records a message for field unless one is already present.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Merge copies messages from other, keeping existing entries.
func (e FieldErrors) Merge(other FieldErrors) {
	for k, v := range other {
		e.Add(k, v)
	}
}

// Empty reports whether no errors were recorded.
func (e FieldErrors) Empty() bool { return len(e) == 0 }
