package rva

import "errors"

var ErrOpUnsupported = errors.New("operation unsupported")
