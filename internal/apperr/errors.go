package apperr

// ValidationError reports caller-supplied input that cannot be scored,
// such as a span whose start lies after its end.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// InternalError marks a broken invariant inside the scorer. It is never
// caused by user input and must not be retried.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return "internal error in " + e.Op + ": " + e.Err.Error()
	}
	return "internal error in " + e.Op
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternal(op string, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}
