package domain

// Message belongs to exactly one HelpRequest and travels between a sender
// and a recipient, identified by username.
type Message struct {
	ID        uint   `json:"messageId" gorm:"primaryKey;column:message_id"`
	RequestID uint   `json:"requestId" gorm:"not null;index"`
	Language  string `json:"language"`
	Sender    string `json:"sender" gorm:"not null"`
	Recipient string `json:"recipient" gorm:"not null"`
	Message   string `json:"message" gorm:"not null"`
	DateSent  string `json:"dateSent" gorm:"not null"`
	TimeSent  string `json:"timeSent" gorm:"not null"`
}

// Conversation is the ordered set of messages sharing one HelpRequest id,
// filtered to a given participant.
type Conversation []*Message
