package authValidator

import (
	"courseply/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest mirrors the original sign-up form bounds.
type SignupRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=150"`
	Username        string `json:"username" validate:"required,min=2,max=150"`
	Password        string `json:"password" validate:"required,min=6,max=150"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=150"`
	Password string `json:"password" validate:"required,min=6,max=150"`
}

var signupMessages = map[string]string{
	"Name":            "Name must be between 2 and 150 characters!",
	"Username":        "Username must be between 2 and 150 characters!",
	"Password":        "Password must be between 6 and 150 characters!",
	"ConfirmPassword": "Passwords do not match!",
}

var loginMessages = map[string]string{
	"Username": "Username must be between 2 and 150 characters!",
	"Password": "Password must be between 6 and 150 characters!",
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

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData), signupMessages); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := collectErrors(validate.Struct(reqData), loginMessages); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
