// Package messagerepo persists the audit trail written by job lifecycle operations.
package messagerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/message"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Model    string    `gorm:"not null;index:idx_messages_author_model_date,priority:2"`
	ResID    int64     `gorm:"not null;index"`
	AuthorID int64     `gorm:"not null;index:idx_messages_author_model_date,priority:1"`
	Body     string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"not null;index:idx_messages_author_model_date,priority:3"`
}

func (MessageDTO) TableName() string {
	return "messages"
}

func fromDomain(m *message.Message) MessageDTO {
	return MessageDTO{
		ID:       m.ID().Bytes(),
		Model:    string(m.Model()),
		ResID:    m.ResID().Int64(),
		AuthorID: m.AuthorID().Int64(),
		Body:     m.Body(),
		Date:     m.Date(),
	}
}

func toDomain(dto MessageDTO) (*message.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return message.RestoreMessage(
		id,
		message.Model(dto.Model),
		kernel.ObjectID(dto.ResID),
		kernel.ObjectID(dto.AuthorID),
		dto.Body,
		dto.Date,
	)
}
