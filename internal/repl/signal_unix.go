// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package repl

import (
	"os"

	"golang.org/x/sys/unix"
)

// interruptSignals are the signals that request cooperative
// cancellation of an in-flight evaluation.
//
//nolint:gochecknoglobals
var interruptSignals = []os.Signal{unix.SIGINT}
