package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a storefront account. The villager field names the shopping
// assistant the user picked at registration.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string     `gorm:"column:username;type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Villager     string     `gorm:"column:villager;not null;default:''"`
	Subscribed   bool       `gorm:"column:subscribed;not null;default:false"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
