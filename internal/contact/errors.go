package contact

// errors.go maps technical errors to user-friendly messages with stable
// codes. Users can quote the code when reporting a problem.
//
// Codes are grouped by category:
//
//	FILE001 - input file not found
//	FILE002 - file is not valid CSV
//	FILE003 - upload missing or empty
//	OUT001  - output could not be written
//	DB001   - database unreachable
//	DB002   - database load failed
//	GEN001  - anything else

import "strings"

// UserMessage is a user-facing description of an error.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// errorPattern maps an error-text substring to a user message.
// Patterns are checked in order; first match wins.
type errorPattern struct {
	substr string
	msg    UserMessage
}

var errorPatterns = []errorPattern{
	{"not found", UserMessage{
		Code:    "FILE001",
		Message: "The contacts file could not be found",
		Action:  "Check that the input path exists (the error includes the path that was tried)",
	}},
	{"parse error", UserMessage{
		Code:    "FILE002",
		Message: "The file is not a valid CSV",
		Action:  "Ensure the file is comma-separated with a header row",
	}},
	{"no file provided", UserMessage{
		Code:    "FILE003",
		Message: "No CSV file was uploaded",
		Action:  "Attach a CSV file to the 'file' form field",
	}},
	{"writing cleaned csv", UserMessage{
		Code:    "OUT001",
		Message: "The cleaned output could not be written",
		Action:  "Check that the output directory is writable",
	}},
	{"writing report", UserMessage{
		Code:    "OUT001",
		Message: "The cleaning report could not be written",
		Action:  "Check that the output directory is writable",
	}},
	{"connection refused", UserMessage{
		Code:    "DB001",
		Message: "Unable to connect to the database",
		Action:  "Verify DATABASE_URL and that the server is running",
	}},
	{"loading contacts into database", UserMessage{
		Code:    "DB002",
		Message: "Cleaned contacts could not be loaded into the database",
		Action:  "The file outputs were still written; retry the database load",
	}},
}

// MapError converts a technical error into a UserMessage by matching
// known substrings of the error text.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{Code: "GEN000", Message: "OK"}
	}

	text := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(text, p.substr) {
			return p.msg
		}
	}

	return UserMessage{
		Code:    "GEN001",
		Message: "An unexpected error occurred",
		Action:  "Check the logs for details",
	}
}
