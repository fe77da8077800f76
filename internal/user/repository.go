package user

import (
	"errors"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/apperrors"
	"github.com/bakeoffleague/fantasy-bakeoff/pkg/db"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(name, email string) (*User, error)
	GetUser(id uint) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetAllUsers() ([]User, error)
	UpdateUser(id uint, name, email string) error
	DeleteUser(id uint) error
}

type GormUserRepository struct{}

func NewUserRepository() *GormUserRepository {
	return &GormUserRepository{}
}

func (r *GormUserRepository) CreateUser(name, email string) (*User, error) {
	newUser := User{
		Name:  name,
		Email: email,
	}
	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error creating user", err)
	}
	return &newUser, nil
}

func (r *GormUserRepository) GetUser(id uint) (*User, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting user", result.Error)
	}
	return &u, nil
}

func (r *GormUserRepository) GetUserByEmail(email string) (*User, error) {
	var u User
	result := db.DB.Where("email = ?", email).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting user by email", result.Error)
	}
	return &u, nil
}

func (r *GormUserRepository) GetAllUsers() ([]User, error) {
	users := []User{}
	if err := db.DB.Order("name").Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing users", err)
	}
	return users, nil
}

func (r *GormUserRepository) UpdateUser(id uint, name, email string) error {
	result := db.DB.Model(&User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email})
	if result.Error != nil {
		return apperrors.NewAppError(500, "error updating user", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "user not found", nil)
	}
	return nil
}

// DeleteUser removes the user row; the picks foreign key cascades so all of
// their submissions go with them.
func (r *GormUserRepository) DeleteUser(id uint) error {
	result := db.DB.Delete(&User{}, id)
	if result.Error != nil {
		return apperrors.NewAppError(500, "error deleting user", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewAppError(404, "user not found", nil)
	}
	return nil
}
