package services

import (
	"errors"

	courseModels "courseply/models/course"
	"courseply/policy"

	"gorm.io/gorm"
)

// CatalogService owns courses and their ordered lessons.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// CourseInput carries the validated fields for course create/update.
// Empty update fields are left untouched.
type CourseInput struct {
	Title       string
	Description string
	ImageURL    string
}

// LessonInput carries the validated fields for lesson create/update.
type LessonInput struct {
	Title       string
	Description string
	VideoURL    string
}

func (s *CatalogService) CreateCourse(authorID string, in CourseInput) (*courseModels.Course, error) {
	course := courseModels.Course{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		AuthorID:    authorID,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CatalogService) GetCourse(id string) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := s.db.Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *CatalogService) ListCourses() ([]courseModels.Course, error) {
	var courses []courseModels.Course
	if err := s.db.Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// PreviewCourses returns at most limit courses for the landing page.
func (s *CatalogService) PreviewCourses(limit int) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	if err := s.db.Order("created_at desc").Limit(limit).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CatalogService) ListByAuthor(authorID string) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	if err := s.db.Where("author_id = ?", authorID).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CatalogService) UpdateCourse(actorID, id string, in CourseInput) (*courseModels.Course, error) {
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditCourse(actorID, course) {
		return nil, ErrUnauthorized
	}

	if in.Title != "" {
		course.Title = in.Title
	}
	if in.Description != "" {
		course.Description = in.Description
	}
	if in.ImageURL != "" {
		course.ImageURL = in.ImageURL
	}

	if err := s.db.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes the course together with its lessons, those lessons'
// completions and every enrollment referencing the course.
func (s *CatalogService) DeleteCourse(actorID, id string) error {
	course, err := s.GetCourse(id)
	if err != nil {
		return err
	}
	if !policy.CanEditCourse(actorID, course) {
		return ErrUnauthorized
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&courseModels.Lesson{}).Select("id").Where("course_id = ?", id)
		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&courseModels.Completion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&courseModels.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&courseModels.Course{}, "id = ?", id).Error
	})
}

// CreateLesson appends a lesson to the course. Order is the current lesson
// count + 1 and is never reassigned afterwards.
func (s *CatalogService) CreateLesson(actorID, courseID string, in LessonInput) (*courseModels.Lesson, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditCourse(actorID, course) {
		return nil, ErrUnauthorized
	}

	var lesson courseModels.Lesson
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&courseModels.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
			return err
		}
		lesson = courseModels.Lesson{
			Title:       in.Title,
			Description: in.Description,
			VideoURL:    in.VideoURL,
			CourseID:    courseID,
			Order:       int(count) + 1,
		}
		return tx.Create(&lesson).Error
	})
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *CatalogService) GetLesson(courseID, lessonID string) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	if err := s.db.Where("id = ? AND course_id = ?", lessonID, courseID).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (s *CatalogService) ListLessons(courseID string) ([]courseModels.Lesson, error) {
	var lessons []courseModels.Lesson
	if err := s.db.Where("course_id = ?", courseID).Order(`"order" asc`).Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// UpdateLesson edits lesson fields. Order is immutable.
func (s *CatalogService) UpdateLesson(actorID, courseID, lessonID string, in LessonInput) (*courseModels.Lesson, error) {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditCourse(actorID, course) {
		return nil, ErrUnauthorized
	}

	lesson, err := s.GetLesson(courseID, lessonID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		lesson.Title = in.Title
	}
	if in.Description != "" {
		lesson.Description = in.Description
	}
	if in.VideoURL != "" {
		lesson.VideoURL = in.VideoURL
	}

	if err := s.db.Save(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

// DeleteLesson removes the lesson and its completions. Remaining lessons
// keep their order values, so the sequence may have gaps.
func (s *CatalogService) DeleteLesson(actorID, courseID, lessonID string) error {
	course, err := s.GetCourse(courseID)
	if err != nil {
		return err
	}
	if !policy.CanEditCourse(actorID, course) {
		return ErrUnauthorized
	}

	if _, err := s.GetLesson(courseID, lessonID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&courseModels.Completion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&courseModels.Lesson{}, "id = ?", lessonID).Error
	})
}

// NextLesson returns the lesson with the smallest order strictly greater
// than currentOrder in the same course, or ErrNotFound at the end of the
// sequence.
func (s *CatalogService) NextLesson(courseID string, currentOrder int) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	err := s.db.Where(`course_id = ? AND "order" > ?`, courseID, currentOrder).
		Order(`"order" asc`).
		First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}
