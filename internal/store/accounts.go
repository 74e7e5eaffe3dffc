package store

import (
	"fmt"
	"strings"
	"time"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
)

type AccountFilter struct {
	Marketplace string
	Status      string
}

type AccountInput struct {
	Marketplace string `json:"marketplace" validate:"required"`
	AccountName string `json:"account_name" validate:"required"`
}

type AccountPatch struct {
	AccountName *string `json:"account_name" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,oneof=active warning syncing"`
}

type AccountStore struct {
	ids   clock.IDGenerator
	items *collection[domain.Account]
}

func NewAccountStore(ids clock.IDGenerator) *AccountStore {
	return &AccountStore{ids: ids, items: newCollection[domain.Account]()}
}

func (s *AccountStore) List(filter AccountFilter) []domain.Account {
	return s.items.list(func(a domain.Account) bool {
		return matches(a.Marketplace, filter.Marketplace) && matches(a.Status, filter.Status)
	})
}

func (s *AccountStore) Get(id string) (domain.Account, error) {
	a, ok := s.items.get(id)
	if !ok {
		return domain.Account{}, ErrNotFound
	}
	return a, nil
}

func (s *AccountStore) Create(input AccountInput) (domain.Account, error) {
	if err := validateInput("create account", input); err != nil {
		return domain.Account{}, err
	}
	a := domain.Account{
		ID:          s.ids.NewID("ACC"),
		Marketplace: strings.TrimSpace(input.Marketplace),
		AccountName: strings.TrimSpace(input.AccountName),
		Status:      domain.AccountActive,
	}
	if err := s.items.insert(a.ID, a); err != nil {
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (s *AccountStore) Update(id string, patch AccountPatch) (domain.Account, error) {
	if err := validateInput("update account", patch); err != nil {
		return domain.Account{}, err
	}
	return s.items.update(id, func(a *domain.Account) error {
		if patch.AccountName != nil {
			a.AccountName = strings.TrimSpace(*patch.AccountName)
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		return nil
	})
}

func (s *AccountStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *AccountStore) MarkSyncing(id string) (domain.Account, error) {
	return s.items.update(id, func(a *domain.Account) error {
		a.Status = domain.AccountSyncing
		return nil
	})
}

// CompleteSync marks an account active again. Accounts deleted while the
// sync was running are skipped.
func (s *AccountStore) CompleteSync(id string, at time.Time) bool {
	return s.items.touch(id, func(a *domain.Account) {
		a.Status = domain.AccountActive
		a.LastSync = &at
	})
}

func (s *AccountStore) IDs() []string {
	accounts := s.items.list(nil)
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	return ids
}

func (s *AccountStore) Load(accounts ...domain.Account) error {
	for _, a := range accounts {
		if err := s.items.insert(a.ID, a); err != nil {
			return fmt.Errorf("load account: %w", err)
		}
	}
	return nil
}
