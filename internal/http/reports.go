package http

import (
	"net/http"

	"sellerflow/internal/service"
)

func (h *Handler) reportRequest(r *http.Request) (service.ReportRequest, error) {
	query := r.URL.Query()
	filter, err := orderFilter(query)
	if err != nil {
		return service.ReportRequest{}, err
	}
	return service.ReportRequest{
		Filter: filter,
		Locale: query.Get("locale"),
		Format: query.Get("format"),
	}, nil
}

func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.reportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	file, err := h.svc.SalesReport(r.Context(), req)
	if err != nil {
		h.writeReportError(w, err, "not found")
		return
	}
	writeFile(w, file)
}

func (h *Handler) PerformanceReport(w http.ResponseWriter, r *http.Request) {
	req, err := h.reportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	file, err := h.svc.PerformanceReport(r.Context(), req)
	if err != nil {
		h.writeReportError(w, err, "not found")
		return
	}
	writeFile(w, file)
}

func (h *Handler) InvoiceDocument(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	file, err := h.svc.InvoiceDocument(r.Context(), pathParam(r, "id"), query.Get("locale"), query.Get("format"))
	if err != nil {
		h.writeReportError(w, err, "invoice not found")
		return
	}
	writeFile(w, file)
}
