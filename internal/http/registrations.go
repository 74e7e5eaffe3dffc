package http

import (
	"net/http"
	"strings"

	"sellerflow/internal/store"
)

func registrationFilter(r *http.Request) store.RegistrationFilter {
	return store.RegistrationFilter{Search: strings.TrimSpace(r.URL.Query().Get("search"))}
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListCustomers(r.Context(), registrationFilter(r)))
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCustomer(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "customer not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req store.CustomerInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateCustomer(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "customer not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	var req store.CustomerPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchCustomer(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "customer not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCustomer(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "customer not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListSuppliers(r.Context(), registrationFilter(r)))
}

func (h *Handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	sup, err := h.svc.GetSupplier(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req store.SupplierInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateSupplier(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "supplier not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchSupplier(w http.ResponseWriter, r *http.Request) {
	var req store.SupplierPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchSupplier(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "supplier not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSupplier(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "supplier not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListVendors(w http.ResponseWriter, r *http.Request) {
	writeList(w, h.svc.ListVendors(r.Context(), registrationFilter(r)))
}

func (h *Handler) GetVendor(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVendor(r.Context(), pathParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err, "vendor not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req store.VendorInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.CreateVendor(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err, "vendor not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) PatchVendor(w http.ResponseWriter, r *http.Request) {
	var req store.VendorPatch
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.PatchVendor(r.Context(), pathParam(r, "id"), req)
	if err != nil {
		h.writeServiceError(w, err, "vendor not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVendor(r.Context(), pathParam(r, "id")); err != nil {
		h.writeServiceError(w, err, "vendor not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
