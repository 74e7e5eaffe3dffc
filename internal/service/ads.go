package service

import (
	"context"
	"fmt"

	"sellerflow/internal/domain"
	"sellerflow/internal/locale"
	"sellerflow/internal/metrics"
	"sellerflow/internal/store"

	"go.uber.org/zap"
)

func (s *Service) ListAds(_ context.Context, filter store.AdFilter) []domain.Ad {
	return s.ads.List(filter)
}

func (s *Service) GetAd(_ context.Context, id string) (domain.Ad, error) {
	return s.ads.Get(id)
}

func (s *Service) CreateAd(_ context.Context, input store.AdInput) (domain.Ad, error) {
	return s.ads.Create(input)
}

func (s *Service) PatchAd(_ context.Context, id string, patch store.AdPatch) (domain.Ad, error) {
	return s.ads.Update(id, patch)
}

func (s *Service) DeleteAd(_ context.Context, id string) error {
	return s.ads.Delete(id)
}

// CopyAd duplicates a listing; the title suffix follows the default locale.
func (s *Service) CopyAd(_ context.Context, id string) (domain.Ad, error) {
	ad, err := s.ads.Copy(id, locale.Resolve(s.cfg.DefaultLocale).Labels.Copy)
	if err != nil {
		return domain.Ad{}, err
	}
	s.logger.Info("ad copied", zap.String("source", id), zap.String("id", ad.ID))
	return ad, nil
}

func (s *Service) AdStats(_ context.Context, filter store.AdFilter) (domain.AdStats, error) {
	return metrics.AdStats(s.ads.List(filter))
}

// ProfitAnalysis nets product cost and marketplace fees out of every
// listing's sales.
func (s *Service) ProfitAnalysis(_ context.Context, filter store.AdFilter) (domain.ProfitAnalysis, error) {
	ads := s.ads.List(filter)
	lines := make([]domain.ProfitLine, 0, len(ads))
	for _, ad := range ads {
		line, err := metrics.AdProfitLine(ad)
		if err != nil {
			return domain.ProfitAnalysis{}, fmt.Errorf("ad %s: %w", ad.ID, err)
		}
		lines = append(lines, line)
	}
	return metrics.AnalyzeProfit(lines)
}
