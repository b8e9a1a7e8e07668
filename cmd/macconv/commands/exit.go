package commands

import (
	"errors"
	"fmt"
	"io"

	"macconv/internal/domain"
)

// Process exit statuses returned by Execute.
const (
	ExitOK             = 0
	ExitUsage          = 1
	ExitInvalidAddress = 201
)

// exitCode reports err to stderr and maps it to an exit status.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	var invalid *domain.InvalidAddressError
	if errors.As(err, &invalid) {
		fmt.Fprintf(stderr, "Error: %v\n", invalid)
		return ExitInvalidAddress
	}
	fmt.Fprintf(stderr, "Error: %v\nRun '%s --help' for usage.\n", err, name)
	return ExitUsage
}
