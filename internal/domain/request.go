package domain

// HelpRequest is a posted request for tutoring help. It is owned by its
// creator but visible to every authenticated user.
//
// DueDate and DatePosted are stored as plain YYYY-MM-DD strings so that the
// values a client submits come back byte-for-byte unchanged, with no
// timezone conversion on the way through the database.
type HelpRequest struct {
	ID         uint   `json:"requestId" gorm:"primaryKey;column:request_id"`
	UserID     uint   `json:"userId" gorm:"not null"`
	Username   string `json:"username" gorm:"not null"`
	UserLang   string `json:"userLang"`
	Subject    string `json:"subject" gorm:"not null"`
	StudyLevel string `json:"studyLevel"`
	DueDate    string `json:"dueDate" gorm:"not null"`
	Request    string `json:"request"`
	DatePosted string `json:"datePosted" gorm:"not null"`
	TimePosted string `json:"timePosted" gorm:"not null"`
}
