package userRoutes

import (
	userControllers "courseply/controllers/userControllers"
	"courseply/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Get("/enrollments", middleware.JWTMiddleware, userControllers.GetMyEnrollments)
	userGroup.Get("/courses", middleware.JWTMiddleware, userControllers.GetMyCourses)
}
