package service

import (
	"context"
	"fmt"

	"sellerflow/internal/domain"
	"sellerflow/internal/metrics"
	"sellerflow/internal/store"

	"go.uber.org/zap"
)

// SyncAccount flags the account as syncing and completes the sync after the
// configured delay. An account deleted in the meantime is left alone.
func (s *Service) SyncAccount(_ context.Context, id string) (domain.Account, error) {
	account, err := s.accounts.MarkSyncing(id)
	if err != nil {
		return domain.Account{}, err
	}
	s.clock.AfterFunc(s.cfg.SyncDelay, func() {
		if s.accounts.CompleteSync(id, s.clock.Now()) {
			s.logger.Info("account synced", zap.String("account", id))
		}
	})
	return account, nil
}

func (s *Service) SyncAllAccounts(_ context.Context) ([]domain.Account, error) {
	ids := s.accounts.IDs()
	syncing := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		account, err := s.accounts.MarkSyncing(id)
		if err != nil {
			// removed between listing and marking
			continue
		}
		syncing = append(syncing, account)
	}
	s.clock.AfterFunc(s.cfg.SyncAllDelay, func() {
		done := 0
		for _, a := range syncing {
			if s.accounts.CompleteSync(a.ID, s.clock.Now()) {
				done++
			}
		}
		s.logger.Info("accounts synced", zap.Int("count", done))
	})
	return syncing, nil
}

// BulkIssueInvoices creates every invoice in processing state and issues the
// batch after the configured delay. Inputs are all validated before any
// invoice is created.
func (s *Service) BulkIssueInvoices(_ context.Context, inputs []store.InvoiceInput) ([]domain.Invoice, error) {
	if len(inputs) == 0 {
		return nil, &metrics.ValidationError{Field: "invoices", Value: 0, Reason: "at least one invoice is required"}
	}
	batch := make([]store.InvoiceInput, len(inputs))
	for i, input := range inputs {
		input.Status = domain.InvoiceProcessing
		if err := store.ValidateInvoiceInput(input); err != nil {
			return nil, fmt.Errorf("invoices[%d]: %w", i, err)
		}
		batch[i] = input
	}

	created := make([]domain.Invoice, 0, len(batch))
	var err error
	for i, input := range batch {
		inv, createErr := s.invoices.Create(input)
		if createErr != nil {
			err = fmt.Errorf("invoices[%d]: %w", i, createErr)
			break
		}
		created = append(created, inv)
	}
	if len(created) > 0 {
		s.scheduleIssue(created)
	}
	return created, err
}

func (s *Service) scheduleIssue(batch []domain.Invoice) {
	ids := make([]string, len(batch))
	for i, inv := range batch {
		ids[i] = inv.ID
	}
	s.clock.AfterFunc(s.cfg.BatchDelay, func() {
		issued := 0
		for _, id := range ids {
			if s.invoices.SetStatusIfPresent(id, domain.InvoiceIssued) {
				issued++
			}
		}
		s.logger.Info("invoice batch issued", zap.Int("issued", issued), zap.Int("batch", len(ids)))
	})
}
