//go:build unix

package commands

import (
	"os"
	"syscall"
)

var shutdownSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGHUP,
	syscall.SIGQUIT,
	syscall.SIGTSTP,
	syscall.SIGUSR1,
}
