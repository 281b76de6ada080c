// Package identityrepo reads backend users for authentication.
package identityrepo

import (
	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// UserDTO is a backend user row. Groups holds the fully qualified names of
// the groups the user belongs to.
type UserDTO struct {
	ID           int64          `gorm:"primaryKey;autoIncrement:false"`
	Login        string         `gorm:"uniqueIndex;not null"`
	Email        string
	Name         string
	Active       bool           `gorm:"not null"`
	PasswordHash string         `gorm:"not null"`
	Groups       pq.StringArray `gorm:"type:text[]"`
}

func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*identity.Identity, error) {
	return identity.NewIdentity(kernel.ObjectID(dto.ID), dto.Login, dto.Email, dto.Name, dto.Active)
}
