// Package linkpred defines options, errors, and result records for
// common-neighbor link prediction.
package linkpred

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for link prediction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("linkpred: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linkpred: invalid option supplied")
)

// Prediction is one scored candidate friendship: U and V are
// non-adjacent nodes sharing Score common neighbors (Score > 0).
type Prediction struct {
	U     string
	V     string
	Score int
}

// Option configures Predict via functional arguments.
type Option func(*Options)

// Options holds parameters for Predict.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// TopK, if > 0, truncates the ranked output to the k best pairs.
	// A value of 0 returns every positive-score pair.
	TopK int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no
// truncation.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		TopK: 0,
		err:  nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTopK truncates the ranking to the k highest-scoring pairs.
//
//	k > 0: keep the best k
//	k ≤ 0: invalid option → ErrOptionViolation
func WithTopK(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: TopK must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.TopK = k
	}
}
