// Package settingsrepo stores ledger-wide singletons as key/value rows.
package settingsrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const managerKey = "manager"

type SettingDTO struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

func (SettingDTO) TableName() string {
	return "settings"
}

// GormSettingsRepository implements ports.SettingsRepository.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) Manager(ctx context.Context) (kernel.Account, error) {
	var row SettingDTO
	err := r.db.WithContext(ctx).First(&row, "name = ?", managerKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.Account{}, nil
	}
	if err != nil {
		return kernel.Account{}, err
	}
	return kernel.NewAccount(row.Value)
}

func (r *GormSettingsRepository) SetManager(ctx context.Context, account kernel.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&SettingDTO{Name: managerKey, Value: account.String()}).Error
}
