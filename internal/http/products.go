package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/excel"
	"sellerflow/internal/store"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListProducts(r.Context(), store.ProductFilter{
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.GetProduct(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req store.ProductInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateProduct(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchProduct(w http.ResponseWriter, r *http.Request) {
	var req store.ProductPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchProduct(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProduct(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	rows, err := excel.ParseProductRows(header.Filename, file)
	if err != nil {
		h.writeServiceError(w, err, "product not found")
		return
	}
	result, err := h.svc.ImportProducts(r.Context(), rows)
	if err != nil {
		h.writeServiceError(w, err, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"file_name":  header.Filename,
		"total_rows": len(rows),
		"created":    result.Created,
		"updated":    result.Updated,
	})
}
