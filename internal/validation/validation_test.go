package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/validation"
	"github.com/stretchr/testify/assert"
)

func validRegisterInput() validation.RegisterInput {
	return validation.RegisterInput{
		First:    "Alice",
		Last:     "Smith",
		Age:      30,
		Username: "alice_tutor",
		Email:    "a@b.com",
		Password: "Str0ng!Pass",
		Confirm:  "Str0ng!Pass",
		UserType: "tutor",
		UserLang: "en",
	}
}

func TestCheckRegister(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		mutate   func(*validation.RegisterInput)
		expected []domain.StatusCode
	}{
		{
			name:     "valid form",
			mutate:   func(in *validation.RegisterInput) {},
			expected: nil,
		},
		{
			name: "username with illegal characters",
			mutate: func(in *validation.RegisterInput) {
				in.Username = "alice-tutor!"
			},
			expected: []domain.StatusCode{domain.CodeUsernameInvalid},
		},
		{
			name: "username too short",
			mutate: func(in *validation.RegisterInput) {
				in.Username = "alice"
			},
			expected: []domain.StatusCode{domain.CodeUsernameInvalid},
		},
		{
			name: "username too long",
			mutate: func(in *validation.RegisterInput) {
				in.Username = strings.Repeat("a", 26)
			},
			expected: []domain.StatusCode{domain.CodeUsernameInvalid},
		},
		{
			name: "first name with digits",
			mutate: func(in *validation.RegisterInput) {
				in.First = "Al1ce"
			},
			expected: []domain.StatusCode{domain.CodeFirstNameInvalid},
		},
		{
			name: "hyphenated last name is fine",
			mutate: func(in *validation.RegisterInput) {
				in.Last = "Smith-Jones"
			},
			expected: nil,
		},
		{
			name: "last name too long",
			mutate: func(in *validation.RegisterInput) {
				in.Last = strings.Repeat("a", 31)
			},
			expected: []domain.StatusCode{domain.CodeNameLength},
		},
		{
			name: "age below range",
			mutate: func(in *validation.RegisterInput) {
				in.Age = 17
			},
			expected: []domain.StatusCode{domain.CodeAgeInvalid},
		},
		{
			name: "age above range",
			mutate: func(in *validation.RegisterInput) {
				in.Age = 101
			},
			expected: []domain.StatusCode{domain.CodeAgeInvalid},
		},
		{
			name: "malformed email",
			mutate: func(in *validation.RegisterInput) {
				in.Email = "not-an-email"
			},
			expected: []domain.StatusCode{domain.CodeEmailInvalid},
		},
		{
			name: "email too long",
			mutate: func(in *validation.RegisterInput) {
				in.Email = strings.Repeat("a", 95) + "@b.com"
			},
			expected: []domain.StatusCode{domain.CodeEmailLength},
		},
		{
			name: "weak password",
			mutate: func(in *validation.RegisterInput) {
				in.Password = "password"
				in.Confirm = "password"
			},
			expected: []domain.StatusCode{domain.CodePasswordStrength},
		},
		{
			name: "password too long",
			mutate: func(in *validation.RegisterInput) {
				in.Password = "Str0ng!Pass" + strings.Repeat("x", 15)
				in.Confirm = in.Password
			},
			expected: []domain.StatusCode{domain.CodePasswordLength},
		},
		{
			name: "mismatched confirmation",
			mutate: func(in *validation.RegisterInput) {
				in.Confirm = "Different1!"
			},
			expected: []domain.StatusCode{domain.CodeMismatchedPasswords},
		},
		{
			name: "unknown user type",
			mutate: func(in *validation.RegisterInput) {
				in.UserType = "admin"
			},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
		{
			name: "userLang with digits",
			mutate: func(in *validation.RegisterInput) {
				in.UserLang = "en1"
			},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
		{
			name: "regional language tag is fine",
			mutate: func(in *validation.RegisterInput) {
				in.UserLang = "zh-CN"
			},
			expected: nil,
		},
		{
			name: "multiple failures collected in field order",
			mutate: func(in *validation.RegisterInput) {
				in.First = "Al1ce"
				in.Age = 12
				in.Username = "short"
				in.Confirm = "Different1!"
			},
			expected: []domain.StatusCode{
				domain.CodeFirstNameInvalid,
				domain.CodeAgeInvalid,
				domain.CodeUsernameInvalid,
				domain.CodeMismatchedPasswords,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mutate(&in)
			assert.Equal(t, tt.expected, v.CheckRegister(&in))
		})
	}
}

func TestCheckLogin(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		input    validation.LoginInput
		expected []domain.StatusCode
	}{
		{
			name:     "valid credentials",
			input:    validation.LoginInput{Username: "alice_tutor", Password: "Str0ng!Pass", UserType: "tutor"},
			expected: nil,
		},
		{
			name:     "username with illegal characters",
			input:    validation.LoginInput{Username: "alice tutor", Password: "Str0ng!Pass", UserType: "tutor"},
			expected: []domain.StatusCode{domain.CodeUsernameInvalid},
		},
		{
			name:     "weak password",
			input:    validation.LoginInput{Username: "alice_tutor", Password: "weak", UserType: "tutor"},
			expected: []domain.StatusCode{domain.CodePasswordInvalid},
		},
		{
			name:     "non-alpha user type",
			input:    validation.LoginInput{Username: "alice_tutor", Password: "Str0ng!Pass", UserType: "tutor9"},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.CheckLogin(&tt.input))
		})
	}
}

func TestStrongPassword(t *testing.T) {
	v := validation.New()

	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!Pass", true},
		{"Aa1!aaaa", true},
		{"Aa1!aaa", false},     // 7 chars
		{"aa1!aaaa", false},    // no uppercase
		{"AA1!AAAA", false},    // no lowercase
		{"Aab!aaaa", false},    // no digit
		{"Aa1aaaaa", false},    // no symbol
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			in := validation.LoginInput{Username: "alice_tutor", Password: tt.password, UserType: "tutor"}
			codes := v.CheckLogin(&in)
			if tt.valid {
				assert.Empty(t, codes)
			} else {
				assert.Equal(t, []domain.StatusCode{domain.CodePasswordInvalid}, codes)
			}
		})
	}
}

func validNewRequestInput() validation.NewRequestInput {
	today := time.Now().Format(validation.DateLayout)
	return validation.NewRequestInput{
		UserID:     1,
		Username:   "alice_tutor",
		UserLang:   "en",
		Subject:    "Mathematics",
		StudyLevel: "GCSE Year Ten",
		DueDate:    today,
		Request:    "Need help factoring polynomials",
		DatePosted: today,
		TimePosted: "09:15:00",
	}
}

func TestCheckNewRequest(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		mutate   func(*validation.NewRequestInput)
		expected []domain.StatusCode
	}{
		{
			name:     "valid request",
			mutate:   func(in *validation.NewRequestInput) {},
			expected: nil,
		},
		{
			name: "missing user id",
			mutate: func(in *validation.NewRequestInput) {
				in.UserID = 0
			},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
		{
			name: "subject with digits",
			mutate: func(in *validation.NewRequestInput) {
				in.Subject = "Maths 101"
			},
			expected: []domain.StatusCode{domain.CodeSubjectInvalid},
		},
		{
			name: "study level with punctuation",
			mutate: func(in *validation.NewRequestInput) {
				in.StudyLevel = "A-Level"
			},
			expected: []domain.StatusCode{domain.CodeStudyLevelInvalid},
		},
		{
			name: "body over 750 characters",
			mutate: func(in *validation.NewRequestInput) {
				in.Request = strings.Repeat("a", 751)
			},
			expected: []domain.StatusCode{domain.CodeRequestLength},
		},
		{
			name: "unparseable due date",
			mutate: func(in *validation.NewRequestInput) {
				in.DueDate = "31/12/2026"
			},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
		{
			name: "bad time format",
			mutate: func(in *validation.NewRequestInput) {
				in.TimePosted = "25:00:00"
			},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
		{
			name: "single-digit hour rejected",
			mutate: func(in *validation.NewRequestInput) {
				in.TimePosted = "9:15:00"
			},
			expected: []domain.StatusCode{domain.CodeGeneralError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validNewRequestInput()
			tt.mutate(&in)
			assert.Equal(t, tt.expected, v.CheckNewRequest(&in))
		})
	}
}

func TestCheckNewMessage(t *testing.T) {
	v := validation.New()
	today := time.Now().Format(validation.DateLayout)

	valid := validation.NewMessageInput{
		RequestID: 3,
		UserLang:  "en",
		Sender:    "alice_tutor",
		Recipient: "bob_parent",
		Message:   "Happy to help with this.",
		DateSent:  today,
		TimeSent:  "14:05:59",
	}

	t.Run("valid message", func(t *testing.T) {
		in := valid
		assert.Empty(t, v.CheckNewMessage(&in))
	})

	t.Run("body too short", func(t *testing.T) {
		in := valid
		in.Message = "x"
		assert.Equal(t, []domain.StatusCode{domain.CodeLengthError}, v.CheckNewMessage(&in))
	})

	t.Run("body too long", func(t *testing.T) {
		in := valid
		in.Message = strings.Repeat("a", 501)
		assert.Equal(t, []domain.StatusCode{domain.CodeLengthError}, v.CheckNewMessage(&in))
	})

	t.Run("missing request id and bad sender", func(t *testing.T) {
		in := valid
		in.RequestID = 0
		in.Sender = "bad sender"
		assert.Equal(t, []domain.StatusCode{domain.CodeGeneralError, domain.CodeGeneralError}, v.CheckNewMessage(&in))
	})
}

func TestDateInPast(t *testing.T) {
	today := time.Now()

	assert.True(t, validation.DateInPast(today.AddDate(0, 0, -1).Format(validation.DateLayout)))
	assert.False(t, validation.DateInPast(today.Format(validation.DateLayout)))
	assert.False(t, validation.DateInPast(today.AddDate(0, 0, 1).Format(validation.DateLayout)))
}

func TestSanitizeStripsMarkup(t *testing.T) {
	v := validation.New()

	assert.Equal(t, "hello", v.Sanitize("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold", v.Sanitize("<b>bold</b>"))
	assert.Equal(t, "plain text", v.Sanitize("plain text"))
}
