package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser creates a new user with a bcrypt-hashed password.
func (s *userService) CreateUser(username, email, password string) (*models.User, error) {
	if username == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	if password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password is required")
	}

	var existing models.User
	err := s.db.Where("email = ?", strings.ToLower(email)).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hash),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// GetUsers returns all users ordered by ID.
func (s *userService) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateUser applies a partial update to a user. A supplied password is
// re-hashed before storage.
func (s *userService) UpdateUser(id uint, fields UserUpdateFields) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if fields.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	updates := make(map[string]interface{})
	if fields.Username != nil && *fields.Username != "" {
		updates["username"] = *fields.Username
	}
	if fields.Email != nil && *fields.Email != "" {
		updates["email"] = strings.ToLower(*fields.Email)
	}
	if fields.Password != nil && *fields.Password != "" {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*fields.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, hashErr)
		}
		updates["password"] = string(hash)
	}

	if len(updates) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// DeleteUser soft-deletes a user.
func (s *userService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
