package userController

import (
	"errors"

	"courseply/database"
	"courseply/middleware"
	"courseply/models"
	"courseply/services"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's account.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// GetMyEnrollments returns the caller's enrollments with their courses.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	enrollments := services.NewEnrollmentService(db)
	catalog := services.NewCatalogService(db)

	list, err := enrollments.ListForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]fiber.Map, 0, len(list))
	for _, e := range list {
		course, err := catalog.GetCourse(e.CourseID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
		result = append(result, fiber.Map{"enrollment": e, "course": course})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// GetMyCourses returns the courses the caller authored.
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok || userID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)

	courses, err := catalog.ListByAuthor(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
