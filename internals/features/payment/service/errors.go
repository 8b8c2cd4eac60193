package service

// Typed failures returned by the workflow engine. Controllers map each kind
// to a caller-facing status; the messages are safe to surface as-is.

// AlreadyPaidError: the (month, student) pair already has an active payment.
type AlreadyPaidError struct {
	PaymentMonth string
}

func (e *AlreadyPaidError) Error() string {
	return "The payment already made for : " + e.PaymentMonth
}

// InvalidStudentError: the student service does not know this student.
type InvalidStudentError struct {
	StudentID string
}

func (e *InvalidStudentError) Error() string {
	return "Invalid student Id : " + e.StudentID
}

// InvalidPaymentError: no payment with this id.
type InvalidPaymentError struct {
	PaymentID string
}

func (e *InvalidPaymentError) Error() string {
	return "Invalid payment Id : " + e.PaymentID
}

// RemoteUnavailableError: a sibling service could not be reached. Never
// retried here; the caller decides.
type RemoteUnavailableError struct {
	Err error
}

func (e *RemoteUnavailableError) Error() string {
	return "The requested resource couldn't access due to unavailability"
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

// RemoteCallError: a sibling service was reached but answered badly.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return e.Op + " is failed"
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// StorageError: any persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + " is failed"
}

func (e *StorageError) Unwrap() error { return e.Err }
