package courseValidator

import (
	"courseply/middleware"

	"github.com/gofiber/fiber/v2"
)

// LessonRequest carries lesson form fields. Order is never accepted from
// the client; it is assigned at creation and immutable.
type LessonRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,min=5,max=500"`
	VideoURL    string `json:"video_url" validate:"omitempty,max=255"`
}

var lessonMessages = map[string]string{
	"Title":       "Title must be between 3 and 150 characters!",
	"Description": "Description must be between 5 and 500 characters!",
	"VideoURL":    "Video URL must be at most 255 characters!",
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := collectErrors(validate.Struct(reqData), lessonMessages)
		if reqData.Title == "" {
			errors["Title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["Description"] = "Description is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validator middleware
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData), lessonMessages); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
