package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment links a learner to a course. Completed only ever moves from
// false to true; there is no un-complete transition.
type Enrollment struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID  string    `json:"course_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course"`
	Completed bool      `json:"completed" gorm:"default:false;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
