// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build linux

// Package numa provides a best-effort NUMA first-touch helper: one
// goroutine per page span, pinned round-robin across CPUs, writes the
// first byte of its span so the kernel binds the backing physical
// page to the touching CPU's node. Linux-only, since it relies on
// sched_setaffinity; other platforms get the no-op in numa_other.go.
package numa

import (
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// Touch splits mem into OS-page-sized spans and touches each one from
// a goroutine pinned to a different CPU, joining all of them before
// returning.
func Touch(mem []byte, logger *slog.Logger) {
	if len(mem) == 0 {
		return
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(discard{}, nil))
	}

	page := unix.Getpagesize()
	if page <= 0 {
		page = 4096
	}
	ncpu := runtime.NumCPU()

	var wg sync.WaitGroup
	cpu := 0
	for off := 0; off < len(mem); off += page {
		wg.Add(1)
		go func(off, cpuID int) {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			var set unix.CPUSet
			set.Zero()
			set.Set(cpuID % ncpu)
			if err := unix.SchedSetaffinity(0, &set); err != nil {
				logger.Debug("numa: sched_setaffinity failed", "cpu", cpuID, "error", err)
			}
			// first touch: force the page to be faulted in and bound
			// to whichever node this CPU belongs to.
			mem[off] |= mem[off]
		}(off, cpu)
		cpu++
	}
	wg.Wait()
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
