package errors

// Code is the coarse outcome of an operation.
type Code int

const (
	OK Code = iota
	ERROR
)

func (c Code) String() string {
	if c == OK {
		return "OK"
	}
	return "ERROR"
}

const SuccessMessage = "success"

// Status is the value handed to callers that speak in {code, message} pairs
// (a command dispatcher, a wire protocol).
type Status struct {
	Code    Code
	Message string
}

// StatusOf converts an operation result into a Status.
func StatusOf(err error) Status {
	if err == nil {
		return Status{Code: OK, Message: SuccessMessage}
	}
	return Status{Code: ERROR, Message: err.Error()}
}

func (s Status) OK() bool {
	return s.Code == OK
}

func (s Status) String() string {
	return s.Code.String() + ": " + s.Message
}
