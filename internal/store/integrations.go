package store

import (
	"fmt"
	"strings"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
)

type IntegrationFilter struct {
	Kind   string
	Status string
}

type IntegrationInput struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=marketplace logistics payment"`
}

type IntegrationPatch struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Status *string `json:"status" validate:"omitempty,oneof=connected disconnected"`
}

type IntegrationStore struct {
	clock clock.Clock
	ids   clock.IDGenerator
	items *collection[domain.Integration]
}

func NewIntegrationStore(clk clock.Clock, ids clock.IDGenerator) *IntegrationStore {
	return &IntegrationStore{clock: clk, ids: ids, items: newCollection[domain.Integration]()}
}

func (s *IntegrationStore) List(filter IntegrationFilter) []domain.Integration {
	return s.items.list(func(i domain.Integration) bool {
		return matches(i.Kind, filter.Kind) && matches(i.Status, filter.Status)
	})
}

func (s *IntegrationStore) Get(id string) (domain.Integration, error) {
	i, ok := s.items.get(id)
	if !ok {
		return domain.Integration{}, ErrNotFound
	}
	return i, nil
}

// Create registers a new integration in the connected state.
func (s *IntegrationStore) Create(input IntegrationInput) (domain.Integration, error) {
	if err := validateInput("create integration", input); err != nil {
		return domain.Integration{}, err
	}
	now := s.clock.Now()
	i := domain.Integration{
		ID:       s.ids.NewID("INT"),
		Name:     strings.TrimSpace(input.Name),
		Kind:     input.Kind,
		Status:   domain.IntegrationConnected,
		LastSync: &now,
	}
	if err := s.items.insert(i.ID, i); err != nil {
		return domain.Integration{}, fmt.Errorf("create integration: %w", err)
	}
	return i, nil
}

func (s *IntegrationStore) Update(id string, patch IntegrationPatch) (domain.Integration, error) {
	if err := validateInput("update integration", patch); err != nil {
		return domain.Integration{}, err
	}
	return s.items.update(id, func(i *domain.Integration) error {
		if patch.Name != nil {
			i.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Status != nil {
			s.setStatus(i, *patch.Status)
		}
		return nil
	})
}

// SetStatus connects or disconnects immediately. Connecting stamps LastSync.
func (s *IntegrationStore) SetStatus(id, status string) (domain.Integration, error) {
	return s.Update(id, IntegrationPatch{Status: &status})
}

func (s *IntegrationStore) setStatus(i *domain.Integration, status string) {
	i.Status = status
	if status == domain.IntegrationConnected {
		now := s.clock.Now()
		i.LastSync = &now
	}
}

func (s *IntegrationStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *IntegrationStore) Load(integrations ...domain.Integration) error {
	for _, i := range integrations {
		if err := s.items.insert(i.ID, i); err != nil {
			return fmt.Errorf("load integration: %w", err)
		}
	}
	return nil
}
