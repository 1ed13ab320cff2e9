package services

import (
	"testing"

	courseModels "courseply/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLessonPair(t *testing.T) {
	db := setupTestDB(t)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	learner := seedUser(t, db, "Bob", "bob")
	course := seedCourse(t, db, author.ID, "go-basics")
	lesson := seedLesson(t, db, author.ID, course.ID, "intro")

	// First toggle completes, second reverts; record presence follows the
	// last returned state
	state, err := completions.ToggleLesson(learner.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StateComplete, state)

	var count int64
	db.Model(&courseModels.Completion{}).Where("user_id = ? AND lesson_id = ?", learner.ID, lesson.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	state, err = completions.ToggleLesson(learner.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StateIncomplete, state)

	db.Model(&courseModels.Completion{}).Where("user_id = ? AND lesson_id = ?", learner.ID, lesson.ID).Count(&count)
	assert.Zero(t, count)
}

func TestToggleLessonMissing(t *testing.T) {
	db := setupTestDB(t)
	completions := NewCompletionService(db)

	learner := seedUser(t, db, "Bob", "bob")

	_, err := completions.ToggleLesson(learner.ID, "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatusForCourse(t *testing.T) {
	db := setupTestDB(t)
	enrollments := NewEnrollmentService(db)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	learner := seedUser(t, db, "Bob", "bob")
	course := seedCourse(t, db, author.ID, "go-basics")
	l1 := seedLesson(t, db, author.ID, course.ID, "intro")

	_, err := enrollments.Enroll(learner.ID, course.ID)
	require.NoError(t, err)

	state, err := completions.ToggleLesson(learner.ID, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StateComplete, state)

	status, err := completions.StatusForCourse(learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{l1.ID: true}, status)

	state, err = completions.ToggleLesson(learner.ID, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StateIncomplete, state)

	status, err = completions.StatusForCourse(learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{l1.ID: false}, status)
}

func TestStatusForCourseCoversAllLessons(t *testing.T) {
	db := setupTestDB(t)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	learner := seedUser(t, db, "Bob", "bob")
	course := seedCourse(t, db, author.ID, "go-basics")
	l1 := seedLesson(t, db, author.ID, course.ID, "intro")
	l2 := seedLesson(t, db, author.ID, course.ID, "types")
	l3 := seedLesson(t, db, author.ID, course.ID, "funcs")

	_, err := completions.ToggleLesson(learner.ID, l2.ID)
	require.NoError(t, err)

	status, err := completions.StatusForCourse(learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{l1.ID: false, l2.ID: true, l3.ID: false}, status)
}

func TestStatusForCourseAnonymous(t *testing.T) {
	db := setupTestDB(t)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	course := seedCourse(t, db, author.ID, "go-basics")
	seedLesson(t, db, author.ID, course.ID, "intro")

	// Anonymous callers never receive personalized completion data
	status, err := completions.StatusForCourse("", course.ID)
	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestTogglesAreScopedPerUser(t *testing.T) {
	db := setupTestDB(t)
	completions := NewCompletionService(db)

	author := seedUser(t, db, "Alice", "alice")
	bob := seedUser(t, db, "Bob", "bob")
	carol := seedUser(t, db, "Carol", "carol")
	course := seedCourse(t, db, author.ID, "go-basics")
	lesson := seedLesson(t, db, author.ID, course.ID, "intro")

	_, err := completions.ToggleLesson(bob.ID, lesson.ID)
	require.NoError(t, err)

	bobStatus, err := completions.StatusForCourse(bob.ID, course.ID)
	require.NoError(t, err)
	carolStatus, err := completions.StatusForCourse(carol.ID, course.ID)
	require.NoError(t, err)

	assert.True(t, bobStatus[lesson.ID])
	assert.False(t, carolStatus[lesson.ID])
}
