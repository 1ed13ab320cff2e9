package services

import (
	"testing"

	courseModels "courseply/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCourseByAuthor(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Alice", "alice")
	course := seedCourse(t, db, author.ID, "go-basics")

	updated, err := catalog.UpdateCourse(author.ID, course.ID, CourseInput{Title: "Go Basics, 2nd edition"})
	require.NoError(t, err)
	assert.Equal(t, "Go Basics, 2nd edition", updated.Title)
	// Untouched fields survive a partial update
	assert.Equal(t, course.Description, updated.Description)
}

func TestUpdateCourseByNonAuthor(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Bob", "bob")
	intruder := seedUser(t, db, "Alice", "alice")
	course := seedCourse(t, db, author.ID, "go-basics")

	_, err := catalog.UpdateCourse(intruder.ID, course.ID, CourseInput{Title: "Hijacked"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// No field was mutated
	fresh, err := catalog.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.Title, fresh.Title)
}

func TestGetCourseNotFound(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	_, err := catalog.GetCourse("11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreviewCoursesBounded(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Alice", "alice")
	for _, title := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"} {
		seedCourse(t, db, author.ID, title)
	}

	preview, err := catalog.PreviewCourses(5)
	require.NoError(t, err)
	assert.Len(t, preview, 5)

	all, err := catalog.ListCourses()
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestLessonOrderAssignment(t *testing.T) {
	db := setupTestDB(t)

	author := seedUser(t, db, "Alice", "alice")
	c1 := seedCourse(t, db, author.ID, "go-basics")
	c2 := seedCourse(t, db, author.ID, "sql-basics")

	// Interleave creation across two courses; each sequence is independent
	l1 := seedLesson(t, db, author.ID, c1.ID, "intro")
	m1 := seedLesson(t, db, author.ID, c2.ID, "select")
	l2 := seedLesson(t, db, author.ID, c1.ID, "types")
	m2 := seedLesson(t, db, author.ID, c2.ID, "joins")
	l3 := seedLesson(t, db, author.ID, c1.ID, "funcs")

	assert.Equal(t, 1, l1.Order)
	assert.Equal(t, 2, l2.Order)
	assert.Equal(t, 3, l3.Order)
	assert.Equal(t, 1, m1.Order)
	assert.Equal(t, 2, m2.Order)
}

func TestDeleteLessonKeepsOrderGaps(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Alice", "alice")
	course := seedCourse(t, db, author.ID, "go-basics")

	seedLesson(t, db, author.ID, course.ID, "intro")
	l2 := seedLesson(t, db, author.ID, course.ID, "types")
	l3 := seedLesson(t, db, author.ID, course.ID, "funcs")

	require.NoError(t, catalog.DeleteLesson(author.ID, course.ID, l2.ID))

	// Lesson #3 keeps its order value; the sequence now has a gap
	fresh, err := catalog.GetLesson(course.ID, l3.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Order)

	lessons, err := catalog.ListLessons(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, []int{1, 3}, []int{lessons[0].Order, lessons[1].Order})
}

func TestUpdateLessonOrderImmutable(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Alice", "alice")
	course := seedCourse(t, db, author.ID, "go-basics")
	seedLesson(t, db, author.ID, course.ID, "intro")
	l2 := seedLesson(t, db, author.ID, course.ID, "types")

	updated, err := catalog.UpdateLesson(author.ID, course.ID, l2.ID, LessonInput{Title: "Types and Values"})
	require.NoError(t, err)
	assert.Equal(t, "Types and Values", updated.Title)
	assert.Equal(t, 2, updated.Order)
}

func TestNextLesson(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Alice", "alice")
	course := seedCourse(t, db, author.ID, "go-basics")

	seedLesson(t, db, author.ID, course.ID, "intro")
	l2 := seedLesson(t, db, author.ID, course.ID, "types")
	l3 := seedLesson(t, db, author.ID, course.ID, "funcs")

	next, err := catalog.NextLesson(course.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, l2.ID, next.ID)

	// A gap in the sequence is skipped over
	require.NoError(t, catalog.DeleteLesson(author.ID, course.ID, l2.ID))
	next, err = catalog.NextLesson(course.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, l3.ID, next.ID)

	// Past the last lesson there is no next
	_, err = catalog.NextLesson(course.ID, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCourseCascades(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	enrollments := NewEnrollmentService(db)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	learner := seedUser(t, db, "Bob", "bob")
	course := seedCourse(t, db, author.ID, "go-basics")
	lesson := seedLesson(t, db, author.ID, course.ID, "intro")

	_, err := enrollments.Enroll(learner.ID, course.ID)
	require.NoError(t, err)
	_, err = completions.ToggleLesson(learner.ID, lesson.ID)
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteCourse(author.ID, course.ID))

	// Nothing referencing the course survives
	var lessonCount, enrollmentCount, completionCount int64
	db.Model(&courseModels.Lesson{}).Where("course_id = ?", course.ID).Count(&lessonCount)
	db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount)
	db.Model(&courseModels.Completion{}).Where("lesson_id = ?", lesson.ID).Count(&completionCount)
	assert.Zero(t, lessonCount)
	assert.Zero(t, enrollmentCount)
	assert.Zero(t, completionCount)

	_, err = catalog.GetCourse(course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLessonCascadesCompletions(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	enrollments := NewEnrollmentService(db)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	learner := seedUser(t, db, "Bob", "bob")
	course := seedCourse(t, db, author.ID, "go-basics")
	lesson := seedLesson(t, db, author.ID, course.ID, "intro")

	_, err := enrollments.Enroll(learner.ID, course.ID)
	require.NoError(t, err)
	_, err = completions.ToggleLesson(learner.ID, lesson.ID)
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteLesson(author.ID, course.ID, lesson.ID))

	var completionCount int64
	db.Model(&courseModels.Completion{}).Where("lesson_id = ?", lesson.ID).Count(&completionCount)
	assert.Zero(t, completionCount)
}

func TestCreateLessonByNonAuthor(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	author := seedUser(t, db, "Alice", "alice")
	intruder := seedUser(t, db, "Bob", "bob")
	course := seedCourse(t, db, author.ID, "go-basics")

	_, err := catalog.CreateLesson(intruder.ID, course.ID, LessonInput{
		Title:       "rogue",
		Description: "should not exist",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
