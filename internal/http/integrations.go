package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/store"
)

func (h *Handler) ListIntegrations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	writeList(w, h.svc.ListIntegrations(r.Context(), store.IntegrationFilter{
		Kind:   strings.TrimSpace(query.Get("kind")),
		Status: strings.TrimSpace(query.Get("status")),
	}))
}

func (h *Handler) GetIntegration(w http.ResponseWriter, r *http.Request) {
	integration, err := h.svc.GetIntegration(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "integration not found")
		return
	}
	writeJSON(w, http.StatusOK, integration)
}

func (h *Handler) CreateIntegration(w http.ResponseWriter, r *http.Request) {
	var req store.IntegrationInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateIntegration(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "integration not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchIntegration(w http.ResponseWriter, r *http.Request) {
	var req store.IntegrationPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchIntegration(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "integration not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ConnectIntegration(w http.ResponseWriter, r *http.Request) {
	integration, err := h.svc.ConnectIntegration(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "integration not found")
		return
	}
	writeJSON(w, http.StatusOK, integration)
}

func (h *Handler) DisconnectIntegration(w http.ResponseWriter, r *http.Request) {
	integration, err := h.svc.DisconnectIntegration(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "integration not found")
		return
	}
	writeJSON(w, http.StatusOK, integration)
}

func (h *Handler) DeleteIntegration(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteIntegration(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "integration not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
