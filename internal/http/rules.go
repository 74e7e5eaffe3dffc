package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/store"
)

func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	enabled, err := parseOptionalBool(query.Get("enabled"), "enabled")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeList(w, h.svc.ListRules(r.Context(), store.RuleFilter{
		Category: strings.TrimSpace(query.Get("category")),
		Enabled:  enabled,
	}))
}

func (h *Handler) GetRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.svc.GetRule(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "rule not found")
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (h *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req store.RuleInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateRule(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "rule not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchRule(w http.ResponseWriter, r *http.Request) {
	var req store.RulePatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchRule(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "rule not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ToggleRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.svc.ToggleRule(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "rule not found")
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRule(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "rule not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
