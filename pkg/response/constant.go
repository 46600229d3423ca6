package response

const (
	// MessageSuccess is the message used on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage is the message used when the real error must not
	// leak to the client.
	DefaultErrorMessage = "Internal server error"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
