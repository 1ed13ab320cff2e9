package controllers

import (
	"courseply/database"
	"courseply/middleware"
	courseModels "courseply/models/course"
	"courseply/policy"
	"courseply/services"

	"github.com/gofiber/fiber/v2"
)

// ToggleLessonCompletion flips the caller's completion record for a lesson.
// Author or enrolled learners only.
func ToggleLessonCompletion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	catalog := services.NewCatalogService(db)
	enrollments := services.NewEnrollmentService(db)
	completions := services.NewCompletionService(db)

	courseID := c.Params("courseId")

	course, err := catalog.GetCourse(courseID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch course!")
	}

	enrolled, err := enrollments.IsEnrolled(userID, courseID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch enrollment!")
	}

	if !policy.CanViewLesson(userID, course, enrolled) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	lesson, err := catalog.GetLesson(courseID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Failed to fetch lesson!")
	}

	state, err := completions.ToggleLesson(userID, lesson.ID)
	if err != nil {
		return serviceError(c, err, "Failed to toggle lesson completion!")
	}

	message := "Lesson marked as completed!"
	if state == courseModels.StateIncomplete {
		message = "Lesson marked as incomplete!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"lesson_id": lesson.ID,
		"state":     state,
	})
}
