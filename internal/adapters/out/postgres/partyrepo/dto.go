// Package partyrepo persists the role whitelists. All three roles share one
// table keyed by (role, id); (role, account) is unique.
package partyrepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/party"
)

type PartyDTO struct {
	Role    int    `gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_parties_role_account,priority:1"`
	ID      uint64 `gorm:"primaryKey;autoIncrement:false"`
	Account string `gorm:"type:varchar(128);not null;uniqueIndex:idx_parties_role_account,priority:2"`
	Name    string `gorm:"not null"`
	Address string `gorm:"type:text"`
	Phone   string `gorm:"type:varchar(64)"`
}

func (PartyDTO) TableName() string {
	return "parties"
}

func fromDomain(p *party.Party) PartyDTO {
	return PartyDTO{
		Role:    int(p.Role()),
		ID:      p.ID().Uint64(),
		Account: p.Account().String(),
		Name:    p.Name(),
		Address: p.Address(),
		Phone:   p.Phone(),
	}
}

func toDomain(dto PartyDTO) (*party.Party, error) {
	account, err := kernel.NewAccount(dto.Account)
	if err != nil {
		return nil, err
	}
	return party.RestoreParty(kernel.EntityID(dto.ID), party.Role(dto.Role), account, dto.Name, dto.Address, dto.Phone)
}
