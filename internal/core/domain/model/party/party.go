package party

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty or RestoreParty")

// Party is a registered participant of the marketplace: a customer, a restaurant
// or a deliverer. The account is the caller identity that acts on the party's behalf;
// (role, account) is unique across the ledger. Parties are never deleted.
type Party struct {
	id      kernel.EntityID
	role    Role
	account kernel.Account
	name    string
	address string
	phone   string

	isConstructed bool
}

// NewParty validates a new registration. Name is required; address and phone
// are free text and may be blank.
func NewParty(
	id kernel.EntityID,
	role Role,
	account kernel.Account,
	name, address, phone string,
) (*Party, error) {
	p := &Party{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setRole(role),
		p.setAccount(account),
		p.setName(name),
	); err != nil {
		return nil, err
	}
	p.address = strings.TrimSpace(address)
	p.phone = strings.TrimSpace(phone)

	return p, nil
}

// RestoreParty rebuilds a party from storage.
func RestoreParty(
	id kernel.EntityID,
	role Role,
	account kernel.Account,
	name, address, phone string,
) (*Party, error) {
	return NewParty(id, role, account, name, address, phone)
}

func (p *Party) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartyIsNotConstructed
	}
	return nil
}

func (p *Party) ID() kernel.EntityID {
	return p.id
}

func (p *Party) Role() Role {
	return p.role
}

func (p *Party) Account() kernel.Account {
	return p.account
}

func (p *Party) Name() string {
	return p.name
}

func (p *Party) Address() string {
	return p.address
}

func (p *Party) Phone() string {
	return p.phone
}

func (p *Party) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Party) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Party) setAccount(account kernel.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	p.account = account
	return nil
}

func (p *Party) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
