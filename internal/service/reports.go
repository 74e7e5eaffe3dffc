package service

import (
	"context"

	"sellerflow/internal/report"
	"sellerflow/internal/store"

	"go.uber.org/zap"
)

const (
	accessKeyDigits = 44
	protocolDigits  = 15
)

type ReportRequest struct {
	Filter store.OrderFilter
	Locale string
	Format string
}

func (s *Service) options(locale string) report.Options {
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}
	return report.Options{
		Locale:      locale,
		GeneratedAt: s.now(),
		MaxRecords:  s.cfg.MaxDocumentRecords,
	}
}

func (s *Service) SalesReport(_ context.Context, req ReportRequest) (report.File, error) {
	format, err := report.ParseFormat(req.Format)
	if err != nil {
		return report.File{}, err
	}
	doc, err := report.BuildSales(report.SalesInput{
		Orders: s.orders.List(req.Filter),
		Filters: report.SalesFilters{
			Marketplace: req.Filter.Marketplace,
			DateWindow:  req.Filter.DateWindow,
			Status:      req.Filter.Status,
			Search:      req.Filter.Search,
		},
	}, s.options(req.Locale))
	if err != nil {
		s.logger.Error("sales report failed", zap.Error(err))
		return report.File{}, err
	}
	return s.export(doc, format)
}

func (s *Service) PerformanceReport(_ context.Context, req ReportRequest) (report.File, error) {
	format, err := report.ParseFormat(req.Format)
	if err != nil {
		return report.File{}, err
	}
	doc, err := report.BuildPerformance(report.PerformanceInput{
		Orders:      s.orders.List(req.Filter),
		Products:    s.products.List(store.ProductFilter{}),
		Period:      req.Filter.DateWindow,
		Marketplace: req.Filter.Marketplace,
	}, s.options(req.Locale))
	if err != nil {
		s.logger.Error("performance report failed", zap.Error(err))
		return report.File{}, err
	}
	return s.export(doc, format)
}

func (s *Service) InvoiceDocument(_ context.Context, id, locale, rawFormat string) (report.File, error) {
	format, err := report.ParseFormat(rawFormat)
	if err != nil {
		return report.File{}, err
	}
	inv, err := s.invoices.Get(id)
	if err != nil {
		return report.File{}, err
	}
	doc, err := report.BuildInvoice(report.InvoiceInput{
		Invoice:   inv,
		AccessKey: s.ids.Digits(accessKeyDigits),
		Protocol:  s.ids.Digits(protocolDigits),
	}, s.options(locale))
	if err != nil {
		s.logger.Error("invoice document failed", zap.String("invoice", id), zap.Error(err))
		return report.File{}, err
	}
	return s.export(doc, format)
}

func (s *Service) export(doc *report.Document, format report.Format) (report.File, error) {
	file, err := report.Export(doc, format)
	if err != nil {
		s.logger.Error("document export failed", zap.String("title", doc.Title), zap.Error(err))
		return report.File{}, err
	}
	s.logger.Info("document generated",
		zap.String("file", file.Name),
		zap.Int("pages", doc.PageCount()),
		zap.Int("bytes", len(file.Data)),
	)
	return file, nil
}
