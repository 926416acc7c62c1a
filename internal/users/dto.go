package users

import (
	"time"

	"github.com/avaldez/nookstop-backend/pkg/db/models"
	"github.com/google/uuid"
)

// CreateUserDTO carries the fields needed to insert a new account.
type CreateUserDTO struct {
	Username     string
	PasswordHash string
	Villager     string
}

// ToModel maps the DTO onto a persistence model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Villager:     d.Villager,
	}
}

// UpdateAccountDTO carries the mutable account settings.
type UpdateAccountDTO struct {
	Villager   *string
	Subscribed *bool
}

// Empty reports whether the update carries no changes.
func (d UpdateAccountDTO) Empty() bool {
	return d.Villager == nil && d.Subscribed == nil
}

// UserDTO is the public shape of an account returned by the API.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Villager    string     `json:"villager"`
	Subscribed  bool       `json:"subscribed"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromModel maps a persistence model to its public DTO.
func FromModel(user *models.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		Villager:    user.Villager,
		Subscribed:  user.Subscribed,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
