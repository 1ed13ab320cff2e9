package controllers

import (
	"courseply/database"
	"courseply/middleware"
	"courseply/policy"
	"courseply/services"

	courseValidators "courseply/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson appends a lesson to a course. Author only; its order is
// assigned by the catalog, never taken from the request.
func CreateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidators.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	lesson, err := catalog.CreateLesson(userID, c.Params("id"), services.LessonInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
	})
	if err != nil {
		return serviceError(c, err, "Failed to create lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// GetLesson returns a single lesson. Author or enrolled learners only.
func GetLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	catalog := services.NewCatalogService(db)
	enrollments := services.NewEnrollmentService(db)

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

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// NextLesson returns the lesson following the given order value, for
// sequential navigation. Author or enrolled learners only.
func NextLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	catalog := services.NewCatalogService(db)
	enrollments := services.NewEnrollmentService(db)

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

	next, err := catalog.NextLesson(courseID, lesson.Order)
	if err != nil {
		return serviceError(c, err, "Failed to fetch next lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Next lesson fetched successfully!", next)
}

// UpdateLesson edits lesson fields. Author only. Order is immutable.
func UpdateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidators.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	lesson, err := catalog.UpdateLesson(userID, c.Params("courseId"), c.Params("id"), services.LessonInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
	})
	if err != nil {
		return serviceError(c, err, "Failed to update lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson and its completions. Author only.
func DeleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	if err := catalog.DeleteLesson(userID, c.Params("courseId"), c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to delete lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
