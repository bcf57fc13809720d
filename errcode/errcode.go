// Package errcode defines the stable error identifiers used during
// board bring-up. The brightness engine itself has no recoverable
// errors; these codes surface only from HAL backend construction.
package errcode

// Code is a short, stable error identifier. It is a string newtype,
// comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

const (
	UnknownPin  Code = "unknown_pin"
	UnknownBus  Code = "unknown_bus"
	Unsupported Code = "unsupported"

	Error Code = "error" // generic fallback
)
