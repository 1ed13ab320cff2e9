package services

import (
	"errors"

	"courseply/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CredentialService registers users and verifies logins. Passwords are
// stored only as bcrypt hashes.
type CredentialService struct {
	db        *gorm.DB
	saltRound int
}

func NewCredentialService(db *gorm.DB, saltRound int) *CredentialService {
	return &CredentialService{db: db, saltRound: saltRound}
}

// Register creates a new user with a hashed password.
func (s *CredentialService) Register(name, username, password string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Username: username,
		Password: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Verify checks a username/password pair. Unknown username and wrong
// password report the same error so callers cannot probe for accounts.
func (s *CredentialService) Verify(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
