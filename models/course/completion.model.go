package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Completion records that a learner finished a lesson. The row's presence
// is the whole state: deleting it marks the lesson incomplete again.
type Completion struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_completions_user_lesson"`
	LessonID  string    `json:"lesson_id" gorm:"type:uuid;not null;uniqueIndex:idx_completions_user_lesson"`
	CreatedAt time.Time `json:"created_at"`
}

func (cp *Completion) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	return nil
}

// CompletionState is the result of toggling a lesson completion.
type CompletionState string

const (
	StateComplete   CompletionState = "COMPLETE"
	StateIncomplete CompletionState = "INCOMPLETE"
)
