package models

// Message represents a text post attributed to exactly one account.
type Message struct {
	MessageID       int    `json:"message_id" db:"message_id"`               // Server-assigned primary key
	PostedBy        int    `json:"posted_by" db:"posted_by"`                 // AccountID of the author
	MessageText     string `json:"message_text" db:"message_text"`           // 1-254 characters after trimming
	TimePostedEpoch int64  `json:"time_posted_epoch" db:"time_posted_epoch"` // Caller-supplied timestamp
}
