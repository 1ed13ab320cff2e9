package controllers

import (
	"errors"

	"courseply/database"
	"courseply/middleware"
	"courseply/services"

	courseValidators "courseply/validators/course"

	"github.com/gofiber/fiber/v2"
)

// previewLimit bounds the landing page course list.
const previewLimit = 5

// serviceError translates a service failure into the JSON envelope.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not found!", nil)
	case errors.Is(err, services.ErrUnauthorized):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to do that!", nil)
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	case errors.Is(err, services.ErrNotEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are not enrolled in this course!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
	}
}

// GetAllCourses lists every course. Public.
func GetAllCourses(c *fiber.Ctx) error {
	catalog := services.NewCatalogService(database.Database.Db)

	courses, err := catalog.ListCourses()
	if err != nil {
		return serviceError(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCoursePreview returns the first few courses for the landing page. Public.
func GetCoursePreview(c *fiber.Ctx) error {
	catalog := services.NewCatalogService(database.Database.Db)

	courses, err := catalog.PreviewCourses(previewLimit)
	if err != nil {
		return serviceError(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns the course with its ordered lessons. Anonymous
// callers get no personalized data; logged-in callers also get their
// enrollment state and per-lesson completion map.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	db := database.Database.Db
	catalog := services.NewCatalogService(db)
	enrollments := services.NewEnrollmentService(db)
	completions := services.NewCompletionService(db)

	courseID := c.Params("id")

	course, err := catalog.GetCourse(courseID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch course!")
	}

	lessons, err := catalog.ListLessons(courseID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch lessons!")
	}

	isEnrolled := false
	if userID != "" {
		isEnrolled, err = enrollments.IsEnrolled(userID, courseID)
		if err != nil {
			return serviceError(c, err, "Failed to fetch enrollment!")
		}
	}

	status, err := completions.StatusForCourse(userID, courseID)
	if err != nil {
		return serviceError(c, err, "Failed to fetch completions!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"lessons":     lessons,
		"is_enrolled": isEnrolled,
		"completions": status,
	})
}

// CreateCourse creates a course owned by the caller.
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidators.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	course, err := catalog.CreateCourse(userID, services.CourseInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
	})
	if err != nil {
		return serviceError(c, err, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse edits a course. Author only.
func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidators.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	course, err := catalog.UpdateCourse(userID, c.Params("id"), services.CourseInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
	})
	if err != nil {
		return serviceError(c, err, "Failed to update course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course with its lessons, enrollments and
// completions. Author only.
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	if err := catalog.DeleteCourse(userID, c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to delete course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
