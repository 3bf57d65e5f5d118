package configs

// HTTP defines configuration for the embedded demo backend. When Demo is
// true the app starts an in-process stub API server on Port and points the
// client at it, so the UI can be explored without a real backend.
type HTTP struct {
	// Demo enables the stub backend.
	Demo bool `env:"DEMO" envDefault:"false"`

	// Port is the TCP port the stub server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
