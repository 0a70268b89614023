// Package flow defines sentinel errors and solver options for
// maximum-flow computation.
package flow

import (
	"context"
	"errors"
)

// Sentinel errors for network construction and solving.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("flow: network is nil")

	// ErrEmptyNodeID indicates an empty endpoint ID in AddEdge.
	ErrEmptyNodeID = errors.New("flow: node ID is empty")

	// ErrNegativeCapacity indicates AddEdge was called with capacity < 0.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrSourceNotFound is returned when the source was never registered.
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the sink was never registered.
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = errors.New("flow: source equals sink")
)

// Option configures the solver via functional arguments.
type Option func(*Options)

// Options holds solver parameters and callbacks.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnAugment, if non-nil, is invoked after each augmentation with the
	// source→sink path and the bottleneck pushed along it.
	OnAugment func(path []string, bottleneck int64)
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnAugment: nil,
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

// WithOnAugment registers a callback fired once per augmenting path.
func WithOnAugment(fn func(path []string, bottleneck int64)) Option {
	return func(o *Options) {
		o.OnAugment = fn
	}
}
