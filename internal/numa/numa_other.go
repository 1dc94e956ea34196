// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build !linux

package numa

import "log/slog"

// Touch is a no-op outside Linux: sched_setaffinity-based first touch
// has no portable equivalent, so non-Linux builds fall back to
// whatever page placement the OS allocator already chose.
func Touch(mem []byte, logger *slog.Logger) {}
