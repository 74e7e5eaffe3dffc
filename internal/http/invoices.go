package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/store"

	"go.uber.org/zap"
)

type bulkInvoicesRequest struct {
	Invoices []store.InvoiceInput `json:"invoices"`
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	writeList(w, h.svc.ListInvoices(r.Context(), store.InvoiceFilter{
		Type:   strings.TrimSpace(query.Get("type")),
		Status: strings.TrimSpace(query.Get("status")),
		Search: strings.TrimSpace(query.Get("search")),
	}))
}

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.svc.GetInvoice(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req store.InvoiceInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateInvoice(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "invoice not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// BulkIssueInvoices answers 202: the batch is issued once the processing
// delay elapses. A batch that fails midway answers 207 with the invoices
// that were created and scheduled before the failure.
func (h *Handler) BulkIssueInvoices(w http.ResponseWriter, r *http.Request) {
	var req bulkInvoicesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.BulkIssueInvoices(r.Context(), req.Invoices)
	if err != nil && len(created) > 0 {
		h.logger.Warn("bulk issue stopped early", zap.Int("created", len(created)), zap.Error(err))
		writeJSON(w, http.StatusMultiStatus, map[string]any{"items": created, "count": len(created), "error": err.Error()})
		return
	}
	if err != nil {
		h.writeServiceError(w, err, "invoice not found")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"items": created, "count": len(created)})
}

func (h *Handler) PatchInvoice(w http.ResponseWriter, r *http.Request) {
	var req store.InvoicePatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchInvoice(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "invoice not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInvoice(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "invoice not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
