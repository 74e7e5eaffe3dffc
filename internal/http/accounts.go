package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/store"
)

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	writeList(w, h.svc.ListAccounts(r.Context(), store.AccountFilter{
		Marketplace: strings.TrimSpace(query.Get("marketplace")),
		Status:      strings.TrimSpace(query.Get("status")),
	}))
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.GetAccount(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req store.AccountInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateAccount(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "account not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchAccount(w http.ResponseWriter, r *http.Request) {
	var req store.AccountPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchAccount(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "account not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "account not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SyncAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.SyncAccount(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "account not found")
		return
	}
	writeJSON(w, http.StatusAccepted, account)
}

func (h *Handler) SyncAllAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.SyncAllAccounts(r.Context())
	if err != nil {
		h.writeServiceError(w, err, "account not found")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"items": accounts, "count": len(accounts)})
}
