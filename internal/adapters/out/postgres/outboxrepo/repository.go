// Package outboxrepo implements the transactional outbox: events are inserted in
// the transaction of the mutation that produced them and marked once relayed.
package outboxrepo

import (
	"context"
	"time"

	"foodorder/internal/core/domain/events"
	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type OutboxDTO struct {
	Seq         uint64     `gorm:"primaryKey;autoIncrement"`
	EventID     string     `gorm:"type:varchar(36);not null;uniqueIndex"`
	Name        string     `gorm:"type:varchar(64);not null"`
	Payload     []byte     `gorm:"not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

// GormOutboxRepository implements ports.OutboxRepository.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, envelope events.Envelope) error {
	if err := envelope.ID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&OutboxDTO{
		EventID:    envelope.ID.String(),
		Name:       envelope.Name,
		Payload:    envelope.Payload,
		OccurredAt: envelope.OccurredAt,
	}).Error
}

// ListPending returns up to limit unpublished events, oldest first.
func (r *GormOutboxRepository) ListPending(ctx context.Context, limit int) ([]events.Envelope, error) {
	var rows []OutboxDTO
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	envelopes := make([]events.Envelope, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromString(row.EventID)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, events.Envelope{
			ID:         id,
			Name:       row.Name,
			OccurredAt: row.OccurredAt.UTC(),
			Payload:    row.Payload,
		})
	}
	return envelopes, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	return r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("event_id IN ?", keys).
		Update("published_at", at.UTC()).Error
}
