package messagerepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"

	"gorm.io/gorm"
)

// GormMessageRepository implements ports.MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Append(ctx context.Context, m *message.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	dto := fromDomain(m)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormMessageRepository) ListByAuthorSince(
	ctx context.Context,
	authorID kernel.ObjectID,
	model message.Model,
	since time.Time,
) ([]*message.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND model = ? AND date >= ?", authorID.Int64(), string(model), since).
		Order("date, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*message.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}
