package partyrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartyRepository implements ports.PartyRepository using GORM.
type GormPartyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind kernel.Kind, id kernel.EntityID)
}

func NewGormPartyRepository(db *gorm.DB, tracker aggregateTracker) *GormPartyRepository {
	return &GormPartyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a registration. A duplicate (role, account) is reported as
// errs.ErrAlreadyRegistered when the dialect translates constraint errors.
func (r *GormPartyRepository) Add(ctx context.Context, aggregate *party.Party) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyRegisteredError(aggregate.Role().String(), aggregate.Account().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Role().Kind(), aggregate.ID())
	return nil
}

func (r *GormPartyRepository) Get(ctx context.Context, role party.Role, id kernel.EntityID) (*party.Party, error) {
	var dto PartyDTO
	err := r.db.WithContext(ctx).First(&dto, "role = ? AND id = ?", int(role), id.Uint64()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError(role.String(), id)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPartyRepository) IDOf(ctx context.Context, role party.Role, account kernel.Account) (kernel.EntityID, error) {
	var dto PartyDTO
	err := r.db.WithContext(ctx).
		Select("id").
		First(&dto, "role = ? AND account = ?", int(role), account.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.Unassigned, errs.NewObjectNotFoundError(role.String(), account)
	}
	if err != nil {
		return kernel.Unassigned, err
	}

	return kernel.EntityID(dto.ID), nil
}

func (r *GormPartyRepository) IsMember(ctx context.Context, role party.Role, account kernel.Account) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PartyDTO{}).
		Where("role = ? AND account = ?", int(role), account.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
