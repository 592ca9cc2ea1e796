package core

import "runtime"

// EvalConfig defines settings shared by batch frequency-response evaluation.
type EvalConfig struct {
	// SampleRate in Hz used to normalize frequencies given in Hz.
	SampleRate float64
	// Workers is the upper bound on goroutines evaluating one batch.
	Workers int
	// ChunkSize is the number of consecutive frequencies a worker claims at once.
	ChunkSize int
}

// EvalOption mutates an EvalConfig.
type EvalOption func(*EvalConfig)

// DefaultEvalConfig returns defaults suitable for plotting-sized batches.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		SampleRate: 48000,
		Workers:    runtime.GOMAXPROCS(0),
		ChunkSize:  1024,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate float64) EvalOption {
	return func(cfg *EvalConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWorkers sets the maximum number of worker goroutines.
// A value of 1 forces sequential evaluation.
func WithWorkers(workers int) EvalOption {
	return func(cfg *EvalConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithChunkSize sets how many frequencies a worker evaluates per claim.
func WithChunkSize(chunkSize int) EvalOption {
	return func(cfg *EvalConfig) {
		if chunkSize > 0 {
			cfg.ChunkSize = chunkSize
		}
	}
}

// ApplyEvalOptions applies zero or more options to the default config.
func ApplyEvalOptions(opts ...EvalOption) EvalConfig {
	cfg := DefaultEvalConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
