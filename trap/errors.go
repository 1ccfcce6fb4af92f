package trap

import "errors"

var (
	ErrArgumentInvalid = errors.New("argument invalid")
	ErrRegInvalid      = errors.New("register invalid")
)
