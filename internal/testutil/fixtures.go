package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lessonup/lessonup-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	first    string
	last     string
	age      int
	username string
	email    string
	password string
	userType string
	userLang string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		first:    "Test",
		last:     "Person",
		age:      30,
		username: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		email:    "test@example.com",
		password: "Str0ng!Pass",
		userType: domain.UserTypeParent,
		userLang: "en",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithUserType sets the account type (parent or tutor)
func (b *UserBuilder) WithUserType(userType string) *UserBuilder {
	b.userType = userType
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		First:        b.first,
		Last:         b.last,
		Age:          b.age,
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		UserType:     b.userType,
		UserLang:     b.userLang,
		CreatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates the user, logs in through the API and returns the
// user together with the session token from the login cookie
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"username": user.Username,
		"password": rawPassword,
		"userType": user.UserType,
	})
	resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" && cookie.Value != "" {
			return user, cookie.Value
		}
	}

	t.Fatal("login response did not set a session cookie")
	return nil, ""
}

// RequestBuilder creates test help requests
type RequestBuilder struct {
	userID     uint
	username   string
	userLang   string
	subject    string
	studyLevel string
	dueDate    string
	request    string
	datePosted string
	timePosted string
}

// NewRequestBuilder creates a RequestBuilder with defaults owned by user
func NewRequestBuilder(user *domain.User) *RequestBuilder {
	today := time.Now().Format("2006-01-02")
	return &RequestBuilder{
		userID:     user.ID,
		username:   user.Username,
		userLang:   user.UserLang,
		subject:    "Mathematics",
		studyLevel: "GCSE",
		dueDate:    today,
		request:    "Need help with quadratic equations",
		datePosted: today,
		timePosted: "12:30:00",
	}
}

// WithSubject sets the subject
func (b *RequestBuilder) WithSubject(subject string) *RequestBuilder {
	b.subject = subject
	return b
}

// WithDueDate sets the due date
func (b *RequestBuilder) WithDueDate(dueDate string) *RequestBuilder {
	b.dueDate = dueDate
	return b
}

// Build inserts the help request and returns it
func (b *RequestBuilder) Build(t *testing.T, db *gorm.DB) *domain.HelpRequest {
	t.Helper()

	request := &domain.HelpRequest{
		UserID:     b.userID,
		Username:   b.username,
		UserLang:   b.userLang,
		Subject:    b.subject,
		StudyLevel: b.studyLevel,
		DueDate:    b.dueDate,
		Request:    b.request,
		DatePosted: b.datePosted,
		TimePosted: b.timePosted,
	}

	if err := db.Create(request).Error; err != nil {
		t.Fatalf("failed to create help request: %v", err)
	}

	return request
}

// MessageBuilder creates test messages
type MessageBuilder struct {
	requestID uint
	language  string
	sender    string
	recipient string
	message   string
	dateSent  string
	timeSent  string
}

// NewMessageBuilder creates a MessageBuilder for a request between two users
func NewMessageBuilder(requestID uint, sender, recipient string) *MessageBuilder {
	return &MessageBuilder{
		requestID: requestID,
		language:  "en",
		sender:    sender,
		recipient: recipient,
		message:   "Hello, can you help?",
		dateSent:  time.Now().Format("2006-01-02"),
		timeSent:  "14:00:00",
	}
}

// WithMessage sets the message body
func (b *MessageBuilder) WithMessage(message string) *MessageBuilder {
	b.message = message
	return b
}

// Build inserts the message and returns it
func (b *MessageBuilder) Build(t *testing.T, db *gorm.DB) *domain.Message {
	t.Helper()

	message := &domain.Message{
		RequestID: b.requestID,
		Language:  b.language,
		Sender:    b.sender,
		Recipient: b.recipient,
		Message:   b.message,
		DateSent:  b.dateSent,
		TimeSent:  b.timeSent,
	}

	if err := db.Create(message).Error; err != nil {
		t.Fatalf("failed to create message: %v", err)
	}

	return message
}
