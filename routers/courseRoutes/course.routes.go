package courseRoutes

import (
	controllers "courseply/controllers/course"
	"courseply/middleware"
	validators "courseply/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, lesson, enrollment and completion routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog reads; detail personalizes when a token is present
	courseGroup.Get("/list", controllers.GetAllCourses)
	courseGroup.Get("/preview", controllers.GetCoursePreview)

	// Course authoring
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, controllers.GetCourseDetails)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCourse)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, controllers.EnrollInCourse)
	courseGroup.Delete("/:id/unenroll", middleware.JWTMiddleware, controllers.UnenrollFromCourse)
	courseGroup.Patch("/:id/complete", middleware.JWTMiddleware, controllers.MarkCourseComplete)

	// Lessons
	courseGroup.Post("/:id/lesson", middleware.JWTMiddleware, validators.CreateLesson(), controllers.CreateLesson)
	courseGroup.Get("/:courseId/lesson/:id", middleware.JWTMiddleware, controllers.GetLesson)
	courseGroup.Get("/:courseId/lesson/:id/next", middleware.JWTMiddleware, controllers.NextLesson)
	courseGroup.Put("/:courseId/lesson/:id", middleware.JWTMiddleware, validators.UpdateLesson(), controllers.UpdateLesson)
	courseGroup.Delete("/:courseId/lesson/:id", middleware.JWTMiddleware, controllers.DeleteLesson)

	// Lesson completion toggle
	courseGroup.Post("/:courseId/lesson/:id/toggle", middleware.JWTMiddleware, controllers.ToggleLessonCompletion)
}
