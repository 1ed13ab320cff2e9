package authController

import (
	"errors"
	"log"

	"courseply/config"
	"courseply/database"
	"courseply/middleware"
	"courseply/services"

	authValidators "courseply/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidators.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	credentials := services.NewCredentialService(database.Database.Db, config.AppConfig.SaltRound)

	user, err := credentials.Register(reqData.Name, reqData.Username, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Your account has been created!", user)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	credentials := services.NewCredentialService(database.Database.Db, config.AppConfig.SaltRound)

	user, err := credentials.Verify(reqData.Username, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Sign In Unsuccessful. Please check username and password", nil)
		}
		log.Printf("Error verifying credentials: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	token, err := middleware.GenerateJWT(user, user.Name, user.Username)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}
