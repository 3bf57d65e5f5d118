package domain

// Language is a targetable audience language. IDs are numeric on the wire.
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category is a targetable content category. IDs are string slugs.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
