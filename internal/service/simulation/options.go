package simulation

import "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/metrics"

// Option configures optional collaborators of a Service.
type Option func(*Service)

// WithHistory persists every successful simulation.
func WithHistory(h HistoryStore) Option {
	return func(s *Service) { s.history = h }
}

// WithExporter enables spreadsheet export for requests that ask for it.
func WithExporter(e Exporter) Option {
	return func(s *Service) { s.exporter = e }
}

// WithRecorder records simulation metrics.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithConcurrency bounds the number of simulations a comparison or ranking runs at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}
