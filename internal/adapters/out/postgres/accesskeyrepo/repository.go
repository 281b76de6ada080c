package accesskeyrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgErrUniqueViolation = "23505"

// GormAccessKeyRepository implements ports.AccessKeyRepository using GORM.
type GormAccessKeyRepository struct {
	db *gorm.DB
}

func NewGormAccessKeyRepository(db *gorm.DB) *GormAccessKeyRepository {
	return &GormAccessKeyRepository{db: db}
}

// Add saves a new key. A concurrent insert of the same identity and name
// yields accesskey.ErrKeyAlreadyExists.
func (r *GormAccessKeyRepository) Add(ctx context.Context, key *accesskey.AccessKey) error {
	if err := key.Validate(); err != nil {
		return err
	}

	dto := fromDomain(key)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return accesskey.ErrKeyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *GormAccessKeyRepository) FindByName(
	ctx context.Context,
	identityID kernel.ObjectID,
	name string,
) ([]*accesskey.AccessKey, error) {
	var dtos []AccessKeyDTO
	err := r.db.WithContext(ctx).
		Where("identity_id = ? AND name = ?", identityID.Int64(), name).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	keys := make([]*accesskey.AccessKey, 0, len(dtos))
	for _, dto := range dtos {
		key, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *GormAccessKeyRepository) DeleteByName(ctx context.Context, identityID kernel.ObjectID, name string) error {
	return r.db.WithContext(ctx).
		Where("identity_id = ? AND name = ?", identityID.Int64(), name).
		Delete(&AccessKeyDTO{}).Error
}

func (r *GormAccessKeyRepository) DeleteCreatedBefore(ctx context.Context, name string, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("name = ? AND created_at < ?", name, before).
		Delete(&AccessKeyDTO{})
	return result.RowsAffected, result.Error
}
