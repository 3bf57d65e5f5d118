package configs

import "time"

// API defines how the client reaches the marketplace backend. AuthHeader
// and AuthToken carry the opaque host identity when the app runs outside
// the platform webview; both must be set for the header to be sent.
type API struct {
	// BaseURL is the absolute root of the backend, e.g. "https://ads.example.com".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// CSRFCookie is the cookie the backend issues its CSRF token in. The
	// token is echoed back in the X-CSRFToken header on every request.
	CSRFCookie string `env:"CSRF_COOKIE" envDefault:"csrftoken"`

	// Timeout bounds a single API request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	AuthHeader string `env:"AUTH_HEADER"`
	AuthToken  string `env:"AUTH_TOKEN"`
}
