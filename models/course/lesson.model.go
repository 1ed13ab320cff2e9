package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson belongs to a course. Order is 1-based, assigned once at creation
// as lesson count + 1 and never renumbered, so deletions leave gaps.
type Lesson struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"size:150;not null"`
	Description string    `json:"description" gorm:"size:500;not null"`
	VideoURL    string    `json:"video_url" gorm:"size:255"`
	CourseID    string    `json:"course_id" gorm:"type:uuid;index;not null"`
	Order       int       `json:"order" gorm:"column:order;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
