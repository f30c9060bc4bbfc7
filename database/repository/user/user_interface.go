package userRepo

import "saathi/models"

// UserRepository defines methods for user data access. Lookup methods
// return (nil, nil) when no document matches.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByPhone retrieves a user by its phone number.
	GetByPhone(phone string) (*models.User, error)
}
