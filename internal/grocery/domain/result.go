package domain

// Result is the outcome of a conversational tool operation. The dialogue
// driver speaks Message to the user verbatim, so lookup misses and validation
// failures are carried here as declined results rather than Go errors —
// errors are reserved for real I/O failures.
type Result struct {
	OK      bool
	Message string
}

// Accepted builds a successful result.
func Accepted(message string) Result {
	return Result{OK: true, Message: message}
}

// Declined builds a failed-but-recoverable result.
func Declined(message string) Result {
	return Result{OK: false, Message: message}
}
