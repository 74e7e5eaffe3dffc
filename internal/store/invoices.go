package store

import (
	"fmt"
	"strings"
	"time"

	"sellerflow/internal/clock"
	"sellerflow/internal/domain"
)

type InvoiceFilter struct {
	Type   string
	Status string
	Search string
}

type InvoiceInput struct {
	Type     string     `json:"type" validate:"required,oneof=NF-e NFC-e NFS-e"`
	OrderRef string     `json:"order_ref"`
	Customer string     `json:"customer" validate:"required"`
	TaxID    string     `json:"tax_id" validate:"required"`
	Value    float64    `json:"value" validate:"gt=0"`
	Date     *time.Time `json:"date"`
	Status   string     `json:"status" validate:"omitempty,oneof=issued processing error"`
}

type InvoicePatch struct {
	OrderRef *string  `json:"order_ref"`
	Customer *string  `json:"customer" validate:"omitempty,min=1"`
	TaxID    *string  `json:"tax_id" validate:"omitempty,min=1"`
	Value    *float64 `json:"value" validate:"omitempty,gt=0"`
	Status   *string  `json:"status" validate:"omitempty,oneof=issued processing error"`
}

type InvoiceStore struct {
	clock clock.Clock
	ids   clock.IDGenerator
	items *collection[domain.Invoice]
}

func NewInvoiceStore(clk clock.Clock, ids clock.IDGenerator) *InvoiceStore {
	return &InvoiceStore{clock: clk, ids: ids, items: newCollection[domain.Invoice]()}
}

func (s *InvoiceStore) List(filter InvoiceFilter) []domain.Invoice {
	return s.items.list(func(inv domain.Invoice) bool {
		if !matches(inv.Type, filter.Type) || !matches(inv.Status, filter.Status) {
			return false
		}
		if filter.Search != "" {
			return containsFold(inv.ID, filter.Search) || containsFold(inv.Customer, filter.Search) || containsFold(inv.OrderRef, filter.Search)
		}
		return true
	})
}

func (s *InvoiceStore) Get(id string) (domain.Invoice, error) {
	inv, ok := s.items.get(id)
	if !ok {
		return domain.Invoice{}, ErrNotFound
	}
	return inv, nil
}

// ValidateInvoiceInput runs the create rules without storing anything.
func ValidateInvoiceInput(input InvoiceInput) error {
	return validateInput("create invoice", input)
}

func (s *InvoiceStore) Create(input InvoiceInput) (domain.Invoice, error) {
	if err := ValidateInvoiceInput(input); err != nil {
		return domain.Invoice{}, err
	}
	inv := domain.Invoice{
		ID:       s.ids.NewID(invoicePrefix(input.Type)),
		Type:     input.Type,
		OrderRef: strings.TrimSpace(input.OrderRef),
		Customer: strings.TrimSpace(input.Customer),
		TaxID:    strings.TrimSpace(input.TaxID),
		Value:    input.Value,
		Date:     s.clock.Now(),
		Status:   input.Status,
	}
	if input.Date != nil {
		inv.Date = *input.Date
	}
	if inv.Status == "" {
		inv.Status = domain.InvoiceIssued
	}
	if err := s.items.insert(inv.ID, inv); err != nil {
		return domain.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

func (s *InvoiceStore) Update(id string, patch InvoicePatch) (domain.Invoice, error) {
	if err := validateInput("update invoice", patch); err != nil {
		return domain.Invoice{}, err
	}
	return s.items.update(id, func(inv *domain.Invoice) error {
		if patch.OrderRef != nil {
			inv.OrderRef = strings.TrimSpace(*patch.OrderRef)
		}
		if patch.Customer != nil {
			inv.Customer = strings.TrimSpace(*patch.Customer)
		}
		if patch.TaxID != nil {
			inv.TaxID = strings.TrimSpace(*patch.TaxID)
		}
		if patch.Value != nil {
			inv.Value = *patch.Value
		}
		if patch.Status != nil {
			inv.Status = *patch.Status
		}
		return nil
	})
}

// SetStatusIfPresent is the completion path of simulated processing; a
// deleted invoice is silently skipped.
func (s *InvoiceStore) SetStatusIfPresent(id, status string) bool {
	return s.items.touch(id, func(inv *domain.Invoice) {
		inv.Status = status
	})
}

func (s *InvoiceStore) Delete(id string) error {
	return s.items.remove(id)
}

func (s *InvoiceStore) Load(invoices ...domain.Invoice) error {
	for _, inv := range invoices {
		if err := s.items.insert(inv.ID, inv); err != nil {
			return fmt.Errorf("load invoice: %w", err)
		}
	}
	return nil
}

func invoicePrefix(invoiceType string) string {
	switch invoiceType {
	case domain.InvoiceTypeNFCe:
		return "NFC"
	case domain.InvoiceTypeNFSe:
		return "NFS"
	default:
		return "NFE"
	}
}
