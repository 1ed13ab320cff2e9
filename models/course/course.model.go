package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course is an authored collection of ordered lessons
type Course struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"size:150;not null"`
	Description string    `json:"description" gorm:"size:500;not null"`
	ImageURL    string    `json:"image_url" gorm:"size:255"`
	AuthorID    string    `json:"author_id" gorm:"type:uuid;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
