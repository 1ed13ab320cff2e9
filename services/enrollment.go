package services

import (
	"errors"

	courseModels "courseply/models/course"

	"gorm.io/gorm"
)

// EnrollmentService records which learners joined which courses.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll joins a user to a course. At most one enrollment per pair.
func (s *EnrollmentService) Enroll(userID, courseID string) (*courseModels.Enrollment, error) {
	var course courseModels.Course
	if err := s.db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Unenroll removes the enrollment record.
func (s *EnrollmentService) Unenroll(userID, courseID string) error {
	enrollment, err := s.Find(userID, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotEnrolled
		}
		return err
	}
	return s.db.Delete(&courseModels.Enrollment{}, "id = ?", enrollment.ID).Error
}

// MarkCourseComplete flags the enrollment as completed. Calling it again
// while already completed is a no-op success. There is no inverse.
func (s *EnrollmentService) MarkCourseComplete(userID, courseID string) error {
	enrollment, err := s.Find(userID, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotEnrolled
		}
		return err
	}

	if enrollment.Completed {
		return nil
	}

	enrollment.Completed = true
	return s.db.Save(enrollment).Error
}

// Find returns the enrollment for a (user, course) pair, or ErrNotFound.
func (s *EnrollmentService) Find(userID, courseID string) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// IsEnrolled is a convenience wrapper for policy checks.
func (s *EnrollmentService) IsEnrolled(userID, courseID string) (bool, error) {
	_, err := s.Find(userID, courseID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListForUser returns the user's enrollments, newest first.
func (s *EnrollmentService) ListForUser(userID string) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}
