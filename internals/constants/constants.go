package constants

// TokenHeader carries the caller's credential, forwarded as-is to the
// student and location services. The payment service never interprets it.
const TokenHeader = "access_token"

// Payment id prefix, format "pid-" + UUID.
const PaymentIDPrefix = "pid-"

// StatusCodeStudentFound is the student service's documented "student
// found" application status code, embedded in its response envelope. Any
// other embedded code (including 200) means the student does not exist.
const StatusCodeStudentFound = 2000

// List defaults: newest-touched payments first, 100 rows per page.
const (
	DefaultPageSize = 100
	MaxPageSize     = 200
)

// Success message catalogue (mirrors the sibling services' wording).
const (
	MsgPaidSuccessful           = "The payment made successfully"
	MsgPaymentUpdated           = "The payment updated successfully"
	MsgPaymentDeleted           = "The payment deleted successfully"
	MsgReadPayment              = "The payment retrieved successfully"
	MsgReadPaymentList          = "The payment list retrieved successfully"
	MsgReadStudentPaymentList   = "The student payment list retrieved successfully"
	MsgReadStudentPaymentReport = "The student payment report retrieved successfully"
)

// Error message catalogue.
const (
	MsgInternalServerError   = "Internal server error"
	MsgMissingRequiredFields = "The required fields are missing"
	MsgMissingAccessToken    = "The access token is missing"
)
