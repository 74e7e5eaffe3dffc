package http

import (
	"net/http"

	"sellerflow/internal/service"
)

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "not found")
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) Tax(w http.ResponseWriter, r *http.Request) {
	var req service.TaxRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tax, err := h.svc.Tax(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "not found")
		return
	}
	writeJSON(w, http.StatusOK, tax)
}

func (h *Handler) Margin(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	price, err := parseRequiredFloat(query.Get("price"), "price")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	cost, err := parseRequiredFloat(query.Get("cost"), "cost")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.svc.Margin(r.Context(), price, cost)
	if err != nil {
		h.writeServiceError(w, err, "not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
