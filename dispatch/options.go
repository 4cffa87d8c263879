package dispatch

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConversions makes numeric arguments acceptable for any numeric
// parameter type they convert to, so an int argument matches a float64
// parameter. Without it only assignable arguments are accepted.
func WithConversions() Option {
	return func(d *Dispatcher) {
		d.conversions = true
	}
}

// WithLogger reports receiver unwrapping and overload selection to logger.
func WithLogger(logger func(string)) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}
