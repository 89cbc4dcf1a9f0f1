package domain

// StatusCode is a short string identifier sent to the client in place of a
// structured error object. The vocabulary is fixed; clients match on these
// literal values.
type StatusCode string

const (
	CodeSuccess          StatusCode = "success"
	CodeGeneralError     StatusCode = "generalError"
	CodeNotAuthenticated StatusCode = "notAuthenticated"

	// Login / registration
	CodeUserNotFound        StatusCode = "userNotFound"
	CodePasswordRejected    StatusCode = "passwordRejected"
	CodeUsernameInvalid     StatusCode = "usernameInvalid"
	CodePasswordInvalid     StatusCode = "passwordInvalid"
	CodeFirstNameInvalid    StatusCode = "firstNameInvalid"
	CodeLastNameInvalid     StatusCode = "lastNameInvalid"
	CodeNameLength          StatusCode = "nameLength"
	CodeAgeInvalid          StatusCode = "ageInvalid"
	CodeEmailInvalid        StatusCode = "emailInvalid"
	CodeEmailLength         StatusCode = "emailLength"
	CodePasswordStrength    StatusCode = "passwordStrength"
	CodePasswordLength      StatusCode = "passwordLength"
	CodeMismatchedPasswords StatusCode = "mismatchedPasswords"
	CodeUsernameDuplicate   StatusCode = "usernameDuplicate"

	// Help requests
	CodeSubjectInvalid    StatusCode = "subjectInvalid"
	CodeStudyLevelInvalid StatusCode = "studyLevelInvalid"
	CodeRequestLength     StatusCode = "requestLength"
	CodeDueDateInvalid    StatusCode = "dueDateInvalid"
	CodeNoRequests        StatusCode = "noRequests"

	// Messages
	CodeLengthError StatusCode = "lengthError"
	CodeNoMessages  StatusCode = "noMessages"

	CodeDeletionFailed StatusCode = "deletionFailed"
)
