package scheduler

// Option configures the scheduler service.
type Option func(*Service)

// WithListeners registers callbacks invoked for every scheduling decision.
// Concurrent simulations call listeners from their own goroutines.
func WithListeners(listeners ...Listener) Option {
	return func(s *Service) {
		if len(listeners) == 0 {
			return
		}
		s.listeners = append(s.listeners, listeners...)
	}
}
