package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress matches any *InvalidAddressError via errors.Is.
var ErrInvalidAddress = errors.New("invalid MAC address")

// InvalidAddressError reports input that fits none of the accepted notations.
type InvalidAddressError struct {
	Input string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("%q is not a valid MAC Address!", e.Input)
}

func (e *InvalidAddressError) Is(target error) bool { return target == ErrInvalidAddress }
