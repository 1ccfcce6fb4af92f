package emulator

import "errors"

var (
	ErrArchUnsupported = errors.New("architecture unsupported")
	ErrAddressInvalid  = errors.New("address invalid")
	ErrUnalignedAccess = errors.New("unaligned access")
)
