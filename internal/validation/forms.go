package validation

import "github.com/lessonup/lessonup-api/internal/domain"

type LoginInput struct {
	Username string `json:"username" validate:"username_format"`
	Password string `json:"password" validate:"strong_password"`
	UserType string `json:"userType" validate:"alpha"`
}

type RegisterInput struct {
	First    string `json:"first" validate:"name_format,min=2,max=30"`
	Last     string `json:"last" validate:"name_format,min=2,max=30"`
	Age      int    `json:"age" validate:"min=18,max=100"`
	Username string `json:"username" validate:"username_format,min=8,max=25"`
	Email    string `json:"email" validate:"email,max=100"`
	Password string `json:"password" validate:"strong_password,max=20"`
	Confirm  string `json:"confirm"`
	UserType string `json:"userType"`
	UserLang string `json:"userLang" validate:"user_lang"`
}

type NewRequestInput struct {
	UserID     uint   `json:"userId" validate:"min=1"`
	Username   string `json:"username" validate:"username_format,min=8,max=25"`
	UserLang   string `json:"userLang" validate:"user_lang"`
	Subject    string `json:"subject" validate:"subject_format"`
	StudyLevel string `json:"studyLevel" validate:"study_level"`
	DueDate    string `json:"dueDate" validate:"date_format"`
	Request    string `json:"request" validate:"max=750"`
	DatePosted string `json:"datePosted" validate:"date_format"`
	TimePosted string `json:"timePosted" validate:"time_hhmmss"`
}

type NewMessageInput struct {
	RequestID uint   `json:"requestId" validate:"min=1"`
	UserLang  string `json:"userLang" validate:"user_lang"`
	Sender    string `json:"sender" validate:"username_format,min=8,max=25"`
	Recipient string `json:"recipient" validate:"username_format,min=8,max=25"`
	Message   string `json:"message" validate:"min=2,max=500"`
	DateSent  string `json:"dateSent" validate:"date_format"`
	TimeSent  string `json:"timeSent" validate:"time_hhmmss"`
}

var loginCodes = map[string]map[string]domain.StatusCode{
	"Username": {"username_format": domain.CodeUsernameInvalid},
	"Password": {"strong_password": domain.CodePasswordInvalid},
}

var registerCodes = map[string]map[string]domain.StatusCode{
	"First": {
		"name_format": domain.CodeFirstNameInvalid,
		"min":         domain.CodeNameLength,
		"max":         domain.CodeNameLength,
	},
	"Last": {
		"name_format": domain.CodeLastNameInvalid,
		"min":         domain.CodeNameLength,
		"max":         domain.CodeNameLength,
	},
	"Age": {
		"min": domain.CodeAgeInvalid,
		"max": domain.CodeAgeInvalid,
	},
	"Username": {
		"username_format": domain.CodeUsernameInvalid,
		"min":             domain.CodeUsernameInvalid,
		"max":             domain.CodeUsernameInvalid,
	},
	"Email": {
		"email": domain.CodeEmailInvalid,
		"max":   domain.CodeEmailLength,
	},
	"Password": {
		"strong_password": domain.CodePasswordStrength,
		"max":             domain.CodePasswordLength,
	},
}

var newRequestCodes = map[string]map[string]domain.StatusCode{
	"Subject":    {"subject_format": domain.CodeSubjectInvalid},
	"StudyLevel": {"study_level": domain.CodeStudyLevelInvalid},
	"Request":    {"max": domain.CodeRequestLength},
}

var newMessageCodes = map[string]map[string]domain.StatusCode{
	"Message": {
		"min": domain.CodeLengthError,
		"max": domain.CodeLengthError,
	},
}

func (v *Validator) SanitizeLogin(in *LoginInput) {
	in.Username = v.Sanitize(in.Username)
	in.Password = v.Sanitize(in.Password)
	in.UserType = v.Sanitize(in.UserType)
}

// CheckLogin validates login credentials. Any failure aborts the login
// before storage is touched.
func (v *Validator) CheckLogin(in *LoginInput) []domain.StatusCode {
	return v.check(in, loginCodes)
}

func (v *Validator) SanitizeRegister(in *RegisterInput) {
	in.First = v.Sanitize(in.First)
	in.Last = v.Sanitize(in.Last)
	in.Username = v.Sanitize(in.Username)
	in.Email = v.Sanitize(in.Email)
	in.Password = v.Sanitize(in.Password)
	in.Confirm = v.Sanitize(in.Confirm)
	in.UserType = v.Sanitize(in.UserType)
	in.UserLang = v.Sanitize(in.UserLang)
}

// CheckRegister validates a registration form. On top of the per-field
// rules it reports mismatched password confirmation and a userType outside
// parent/tutor, in that order, matching the wire contract.
func (v *Validator) CheckRegister(in *RegisterInput) []domain.StatusCode {
	codes := v.check(in, registerCodes)
	if in.Password != in.Confirm {
		codes = append(codes, domain.CodeMismatchedPasswords)
	}
	if in.UserType != domain.UserTypeParent && in.UserType != domain.UserTypeTutor {
		codes = append(codes, domain.CodeGeneralError)
	}
	return codes
}

func (v *Validator) SanitizeNewRequest(in *NewRequestInput) {
	in.Username = v.Sanitize(in.Username)
	in.UserLang = v.Sanitize(in.UserLang)
	in.Subject = v.Sanitize(in.Subject)
	in.StudyLevel = v.Sanitize(in.StudyLevel)
	in.DueDate = v.Sanitize(in.DueDate)
	in.Request = v.Sanitize(in.Request)
	in.DatePosted = v.Sanitize(in.DatePosted)
	in.TimePosted = v.Sanitize(in.TimePosted)
}

// CheckNewRequest runs the per-field rules for a new help request. The
// past-date checks on dueDate and datePosted are a second stage that only
// runs once these pass; see the handler.
func (v *Validator) CheckNewRequest(in *NewRequestInput) []domain.StatusCode {
	return v.check(in, newRequestCodes)
}

func (v *Validator) SanitizeNewMessage(in *NewMessageInput) {
	in.UserLang = v.Sanitize(in.UserLang)
	in.Sender = v.Sanitize(in.Sender)
	in.Recipient = v.Sanitize(in.Recipient)
	in.Message = v.Sanitize(in.Message)
	in.DateSent = v.Sanitize(in.DateSent)
	in.TimeSent = v.Sanitize(in.TimeSent)
}

func (v *Validator) CheckNewMessage(in *NewMessageInput) []domain.StatusCode {
	return v.check(in, newMessageCodes)
}
