package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/store"
)

func adFilter(r *http.Request) store.AdFilter {
	query := r.URL.Query()
	return store.AdFilter{
		Marketplace: strings.TrimSpace(query.Get("marketplace")),
		Status:      strings.TrimSpace(query.Get("status")),
		Search:      strings.TrimSpace(query.Get("search")),
	}
}

func (h *Handler) ListAds(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListAds(r.Context(), adFilter(r)))
}

func (h *Handler) AdStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AdStats(r.Context(), adFilter(r))
	if err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetAd(w http.ResponseWriter, r *http.Request) {
	ad, err := h.svc.GetAd(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req store.AdInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateAd(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) CopyAd(w http.ResponseWriter, r *http.Request) {
	copied, err := h.svc.CopyAd(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	writeJSON(w, http.StatusCreated, copied)
}

func (h *Handler) PatchAd(w http.ResponseWriter, r *http.Request) {
	var req store.AdPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchAd(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAd(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProfitAnalysis accepts the same filters as the ad list.
func (h *Handler) ProfitAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.svc.ProfitAnalysis(r.Context(), adFilter(r))
	if err != nil {
		h.writeServiceError(w, err, "ad not found")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}
