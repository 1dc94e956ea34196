// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package packedvec

import (
	"io"
	"log/slog"
)

// Option configures a container at construction time, the same
// functional-option shape bpowers/bit's BuilderOption uses for its
// Builder.
type Option[W Word] func(*options[W])

type options[W Word] struct {
	alloc  Allocator[W]
	logger *slog.Logger
	numa   bool
}

func defaultOptions[W Word]() options[W] {
	return options[W]{
		alloc:  defaultAllocator[W]{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithAllocator supplies a custom allocator collaborator in place of
// the default make()-backed one.
func WithAllocator[W Word](a Allocator[W]) Option[W] {
	return func(o *options[W]) { o.alloc = a }
}

// WithLogger sets a logger the container uses for progress/diagnostic
// output (currently: NUMA first-touch scheduling). If not provided,
// no logging output is produced.
func WithLogger[W Word](logger *slog.Logger) Option[W] {
	return func(o *options[W]) { o.logger = logger }
}

// WithNUMAFirstTouch enables the first-touch allocation helper: after
// the word buffer is allocated, one goroutine per page span writes
// its first byte, pinned round-robin across CPUs, before construction
// returns. Off by default; only takes effect on platforms that
// support it (see internal/numa).
func WithNUMAFirstTouch[W Word]() Option[W] {
	return func(o *options[W]) { o.numa = true }
}
