package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedRequest - запись аудита об одном опросе ленты. Только добавляется.
type FeedRequest struct {
	ID            uuid.UUID     `json:"id"`
	RequestedAt   time.Time     `json:"requested_at"`
	ExecutionTime time.Duration `json:"execution_time"`
	Success       bool          `json:"success"`
	Parser        string        `json:"parser"`
	Incidents     *int          `json:"incidents,omitempty"`
	Message       string        `json:"message,omitempty"`
}
