package validation

import (
	"errors"
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

// DateLayout is the wire format for every date field.
const DateLayout = "2006-01-02"

var (
	usernameRegex   = regexp.MustCompile(`^[A-Za-z0-9_]*$`)
	nameRegex       = regexp.MustCompile(`^[A-Za-z]+(-[A-Za-z]+)*$`)
	userLangRegex   = regexp.MustCompile(`^[A-Za-z-]*$`)
	subjectRegex    = regexp.MustCompile(`^[A-Za-z ]*$`)
	studyLevelRegex = regexp.MustCompile(`^[A-Za-z0-9 ]*$`)
	timeRegex       = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
)

// Validator checks inbound payloads field by field, collecting every failing
// field's wire code instead of stopping at the first. String inputs are
// stripped of markup before the rules run.
type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func New() *Validator {
	v := validator.New()

	regexValidations := map[string]*regexp.Regexp{
		"username_format": usernameRegex,
		"name_format":     nameRegex,
		"user_lang":       userLangRegex,
		"subject_format":  subjectRegex,
		"study_level":     studyLevelRegex,
		"time_hhmmss":     timeRegex,
	}
	for tag, re := range regexValidations {
		re := re
		v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}

	v.RegisterValidation("date_format", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	return &Validator{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
	}
}

// isStrongPassword requires at least 8 characters with at least one
// lowercase letter, one uppercase letter, one digit and one symbol.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Sanitize strips markup and script content from a string input.
func (v *Validator) Sanitize(s string) string {
	return v.policy.Sanitize(s)
}

// DateInPast reports whether a YYYY-MM-DD value falls before the current
// date. Dates are compared as strings, so no timezone conversion is
// involved; an unparseable value is handled by the date_format rule, not
// here.
func DateInPast(value string) bool {
	return value < time.Now().Format(DateLayout)
}

// check runs the struct validation and maps every failing field to its wire
// code via the supplied field → tag → code table. Unmapped failures fall
// back to generalError. Codes come back in struct-field order.
func (v *Validator) check(input any, table map[string]map[string]domain.StatusCode) []domain.StatusCode {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []domain.StatusCode{domain.CodeGeneralError}
	}

	codes := make([]domain.StatusCode, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		code := domain.CodeGeneralError
		if tags, ok := table[fe.StructField()]; ok {
			if c, ok := tags[fe.Tag()]; ok {
				code = c
			}
		}
		codes = append(codes, code)
	}
	return codes
}
