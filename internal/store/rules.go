package store

import (
	"fmt"
	"strings"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
)

type RuleFilter struct {
	Category string
	Enabled  *bool
}

type RuleInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	Enabled     bool   `json:"enabled"`
}

type RulePatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Enabled     *bool   `json:"enabled"`
}

type RuleStore struct {
	ids   clock.IDGenerator
	items *collection[domain.AutomationRule]
}

func NewRuleStore(ids clock.IDGenerator) *RuleStore {
	return &RuleStore{ids: ids, items: newCollection[domain.AutomationRule]()}
}

func (s *RuleStore) List(filter RuleFilter) []domain.AutomationRule {
	return s.items.list(func(r domain.AutomationRule) bool {
		if filter.Enabled != nil && r.Enabled != *filter.Enabled {
			return false
		}
		return matches(r.Category, filter.Category)
	})
}

func (s *RuleStore) Get(id string) (domain.AutomationRule, error) {
	r, ok := s.items.get(id)
	if !ok {
		return domain.AutomationRule{}, ErrNotFound
	}
	return r, nil
}

func (s *RuleStore) Create(input RuleInput) (domain.AutomationRule, error) {
	if err := validateInput("create rule", input); err != nil {
		return domain.AutomationRule{}, err
	}
	r := domain.AutomationRule{
		ID:          s.ids.NewID("RULE"),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Enabled:     input.Enabled,
	}
	if err := s.items.insert(r.ID, r); err != nil {
		return domain.AutomationRule{}, fmt.Errorf("create rule: %w", err)
	}
	return r, nil
}

func (s *RuleStore) Update(id string, patch RulePatch) (domain.AutomationRule, error) {
	if err := validateInput("update rule", patch); err != nil {
		return domain.AutomationRule{}, err
	}
	return s.items.update(id, func(r *domain.AutomationRule) error {
		if patch.Name != nil {
			r.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			r.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Category != nil {
			r.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.Enabled != nil {
			r.Enabled = *patch.Enabled
		}
		return nil
	})
}

func (s *RuleStore) Toggle(id string) (domain.AutomationRule, error) {
	return s.items.update(id, func(r *domain.AutomationRule) error {
		r.Enabled = !r.Enabled
		return nil
	})
}

func (s *RuleStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *RuleStore) Load(rules ...domain.AutomationRule) error {
	for _, r := range rules {
		if err := s.items.insert(r.ID, r); err != nil {
			return fmt.Errorf("load rule: %w", err)
		}
	}
	return nil
}
