package services

import (
	"errors"

	courseModels "courseply/models/course"

	"gorm.io/gorm"
)

// CompletionService tracks per-lesson completion records.
type CompletionService struct {
	db *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{db: db}
}

// ToggleLesson flips the completion state for (user, lesson): an existing
// record is deleted, a missing one is created. Callers can only flip the
// state, never force it.
func (s *CompletionService) ToggleLesson(userID, lessonID string) (courseModels.CompletionState, error) {
	var lesson courseModels.Lesson
	if err := s.db.Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	var state courseModels.CompletionState
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing courseModels.Completion
		err := tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&existing).Error
		if err == nil {
			state = courseModels.StateIncomplete
			return tx.Delete(&courseModels.Completion{}, "id = ?", existing.ID).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		state = courseModels.StateComplete
		completion := courseModels.Completion{
			UserID:   userID,
			LessonID: lessonID,
		}
		return tx.Create(&completion).Error
	})
	if err != nil {
		return "", err
	}
	return state, nil
}

// StatusForCourse maps every lesson of the course to whether the user has a
// completion record for it. An unauthenticated caller (empty userID) gets
// an empty map, never personalized data.
func (s *CompletionService) StatusForCourse(userID, courseID string) (map[string]bool, error) {
	status := make(map[string]bool)
	if userID == "" {
		return status, nil
	}

	var lessons []courseModels.Lesson
	if err := s.db.Where("course_id = ?", courseID).Find(&lessons).Error; err != nil {
		return nil, err
	}

	var completions []courseModels.Completion
	lessonIDs := s.db.Model(&courseModels.Lesson{}).Select("id").Where("course_id = ?", courseID)
	if err := s.db.Where("user_id = ? AND lesson_id IN (?)", userID, lessonIDs).Find(&completions).Error; err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(completions))
	for _, c := range completions {
		completed[c.LessonID] = true
	}

	for _, l := range lessons {
		status[l.ID] = completed[l.ID]
	}
	return status, nil
}
