package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/excel"
	"sellerflow/internal/store"
)

func (h *Handler) ListInventory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	writeList(w, h.svc.ListInventory(r.Context(), store.InventoryFilter{
		Search:   strings.TrimSpace(query.Get("search")),
		Location: strings.TrimSpace(query.Get("location")),
		Status:   strings.TrimSpace(query.Get("status")),
	}))
}

func (h *Handler) GetInventoryItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.GetInventoryItem(r.Context(), pathParam(r, "sku"))
	if err != nil {
		h.writeServiceError(w, err, "inventory item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) CreateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req store.InventoryInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateInventoryItem(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "inventory item not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req store.InventoryPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchInventoryItem(r.Context(), pathParam(r, "sku"), req)
	if err != nil {
		h.writeServiceError(w, err, "inventory item not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInventoryItem(r.Context(), pathParam(r, "sku")); err != nil {
		h.writeServiceError(w, err, "inventory item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ImportInventory(w http.ResponseWriter, r *http.Request) {
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

	rows, err := excel.ParseInventoryRows(header.Filename, file)
	if err != nil {
		h.writeServiceError(w, err, "inventory item not found")
		return
	}
	result, err := h.svc.ImportInventory(r.Context(), rows)
	if err != nil {
		h.writeServiceError(w, err, "inventory item not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"file_name":  header.Filename,
		"total_rows": len(rows),
		"created":    result.Created,
		"updated":    result.Updated,
	})
}
