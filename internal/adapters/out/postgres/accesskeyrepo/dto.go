// Package accesskeyrepo persists the backend API keys wrapped by bearer tokens.
package accesskeyrepo

import (
	"time"

	"dispatch/internal/core/domain/model/accesskey"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccessKeyDTO is one stored key. The unique index keeps a single live key
// per identity and name.
type AccessKeyDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityID int64     `gorm:"not null;uniqueIndex:idx_access_keys_identity_name"`
	Name       string    `gorm:"not null;uniqueIndex:idx_access_keys_identity_name;index"`
	Scope      string    `gorm:"not null"`
	KeyHash    string    `gorm:"type:char(64);not null"`
	KeyPrefix  string    `gorm:"type:varchar(8);not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (AccessKeyDTO) TableName() string {
	return "access_keys"
}

func fromDomain(key *accesskey.AccessKey) AccessKeyDTO {
	return AccessKeyDTO{
		ID:         key.ID().Bytes(),
		IdentityID: key.IdentityID().Int64(),
		Name:       key.Name(),
		Scope:      key.Scope(),
		KeyHash:    key.KeyHash(),
		KeyPrefix:  key.KeyPrefix(),
		CreatedAt:  key.CreatedAt(),
	}
}

func toDomain(dto AccessKeyDTO) (*accesskey.AccessKey, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return accesskey.RestoreAccessKey(
		id,
		kernel.ObjectID(dto.IdentityID),
		dto.Name,
		dto.Scope,
		dto.KeyHash,
		dto.KeyPrefix,
		dto.CreatedAt,
	)
}
