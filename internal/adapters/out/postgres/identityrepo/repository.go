package identityrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/identity"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GormIdentityRepository implements ports.IdentityRepository using GORM.
type GormIdentityRepository struct {
	db *gorm.DB
}

func NewGormIdentityRepository(db *gorm.DB) *GormIdentityRepository {
	return &GormIdentityRepository{db: db}
}

// FindByUsername retrieves a user by login, active or not.
func (r *GormIdentityRepository) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}
	return toDomain(dto)
}

// VerifyPassword compares password with the stored bcrypt hash.
func (r *GormIdentityRepository) VerifyPassword(ctx context.Context, id kernel.ObjectID, password string) (bool, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).Select("id", "password_hash").First(&dto, "id = ?", id.Int64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(dto.PasswordHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrHashTooShort):
		return false, nil
	default:
		return false, err
	}
}

func (r *GormIdentityRepository) HasGroup(ctx context.Context, id kernel.ObjectID, group string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ? AND ? = ANY(groups)", id.Int64(), group).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
