package http

import (
	"net/http"

	"sellerflow/internal/store"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := orderFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeList(w, h.svc.ListOrders(r.Context(), filter))
}

func (h *Handler) OrderSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := orderFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := h.svc.OrderSummary(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req store.OrderInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "order not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchOrder(w http.ResponseWriter, r *http.Request) {
	var req store.OrderPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchOrder(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteOrder(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "order not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
