// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package front

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := front.NewRenderer(dev,
//	    front.WithCommandCapacity(1024),
//	    front.WithRollback(true),
//	)
type Option func(*options)

type options struct {
	capacity int
	rollback bool
}

const defaultCommandCapacity = 64

func defaultOptions() options {
	return options{capacity: defaultCommandCapacity}
}

// WithCommandCapacity sets the initial capacity of the command sequence.
// Negative values are treated as zero.
func WithCommandCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithRollback selects what a failed Draw leaves behind.
//
// By default the commands a failed draw already recorded (the frame
// binding, the program binding and any parameters bound before the
// failure) stay in the sequence, and the caller must Reset or discard it.
// With rollback enabled the renderer restores its command sequence and
// frame cache to their state before the call, so a failed draw leaves no
// trace.
func WithRollback(enabled bool) Option {
	return func(o *options) {
		o.rollback = enabled
	}
}
