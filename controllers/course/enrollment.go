package controllers

import (
	"courseply/database"
	"courseply/middleware"
	"courseply/services"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse joins the caller to a course.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments := services.NewEnrollmentService(database.Database.Db)

	enrollment, err := enrollments.Enroll(userID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "Failed to enroll in course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// UnenrollFromCourse removes the caller's enrollment.
func UnenrollFromCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments := services.NewEnrollmentService(database.Database.Db)

	if err := enrollments.Unenroll(userID, c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to unenroll from course!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled from course successfully!", nil)
}

// MarkCourseComplete flags the caller's enrollment as completed. Repeating
// the call is a no-op success.
func MarkCourseComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments := services.NewEnrollmentService(database.Database.Db)

	if err := enrollments.MarkCourseComplete(userID, c.Params("id")); err != nil {
		return serviceError(c, err, "Failed to mark course as completed!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", nil)
}
