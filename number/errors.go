package number

import "errors"

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("numeric overflow")
	ErrNonTerminating = errors.New("non-terminating decimal expansion")
	ErrMalformed      = errors.New("malformed number")
)
