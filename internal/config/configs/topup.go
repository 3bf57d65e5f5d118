package configs

import "time"

// Topup controls the deposit polling loop. The defaults match the payment
// provider's settlement window: ten polls five seconds apart.
type Topup struct {
	// PollInterval is the delay between deposit status checks.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`

	// PollAttempts is the maximum number of status checks before the
	// top-up is reported as still processing.
	PollAttempts int `env:"POLL_ATTEMPTS" envDefault:"10"`
}
