package services

import (
	"path/filepath"
	"testing"

	"courseply/database"
	"courseply/models"
	courseModels "courseply/models/course"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, username string) *models.User {
	t.Helper()

	credentials := NewCredentialService(db, bcrypt.MinCost)
	user, err := credentials.Register(name, username, "password123")
	require.NoError(t, err)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, authorID, title string) *courseModels.Course {
	t.Helper()

	catalog := NewCatalogService(db)
	course, err := catalog.CreateCourse(authorID, CourseInput{
		Title:       title,
		Description: "A course about " + title,
		ImageURL:    "https://img.example.com/" + title + ".png",
	})
	require.NoError(t, err)
	return course
}

func seedLesson(t *testing.T, db *gorm.DB, authorID, courseID, title string) *courseModels.Lesson {
	t.Helper()

	catalog := NewCatalogService(db)
	lesson, err := catalog.CreateLesson(authorID, courseID, LessonInput{
		Title:       title,
		Description: "Lesson notes for " + title,
		VideoURL:    "https://video.example.com/" + title,
	})
	require.NoError(t, err)
	return lesson
}
