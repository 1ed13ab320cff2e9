package courseValidator

import (
	"courseply/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest carries course form fields. Update leaves empty fields
// untouched, so bounds only apply when a value is present.
type CourseRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=150"`
	Description string `json:"description" validate:"omitempty,min=5,max=500"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=255"`
}

var courseMessages = map[string]string{
	"Title":       "Title must be between 3 and 150 characters!",
	"Description": "Description must be between 5 and 500 characters!",
	"ImageURL":    "Image URL must be at most 255 characters!",
}

func collectErrors(err error, messages map[string]string) map[string]string {
	errors := make(map[string]string)
	if err == nil {
		return errors
	}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errors[fieldErr.Field()] = messages[fieldErr.Field()]
	}
	return errors
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := collectErrors(validate.Struct(reqData), courseMessages)
		if reqData.Title == "" {
			errors["Title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["Description"] = "Description is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData), courseMessages); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
