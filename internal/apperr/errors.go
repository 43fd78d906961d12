package apperr

// ValidationError reports a request argument the service refuses to act on.
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

// NotFoundError reports that a requested entity does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
	Err      error
}

func (e *NotFoundError) Error() string {
	msg := e.Resource + " not found"
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func NewNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func NewNotFoundWrap(resource string, id int64, err error) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, Err: err}
}

// IntegrityError reports a record that must exist for a join but does not.
// It points at inconsistent upstream data and is surfaced as an internal error.
type IntegrityError struct {
	Message string
	Err     error
}

func (e *IntegrityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func NewIntegrity(msg string) *IntegrityError {
	return &IntegrityError{Message: msg}
}
