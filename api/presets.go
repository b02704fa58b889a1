package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"domain-swap/preset"
	"domain-swap/rewrite"
)

func (h *handler) listPresets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.presets.List())
}

func (h *handler) savePreset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		OldDomain string `json:"oldDomain"`
		NewDomain string `json:"newDomain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.presets.Save(
		req.Name,
		rewrite.StripProtocol(req.OldDomain),
		rewrite.StripProtocol(req.NewDomain),
	)
	if err != nil {
		switch {
		case errors.Is(err, preset.ErrMissingField):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, preset.ErrNameTaken):
			http.Error(w, "preset name already in use", http.StatusConflict)
		default:
			http.Error(w, "failed to save preset", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

func (h *handler) getPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.presets.Get(id)
	if err != nil {
		http.Error(w, "preset not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

func (h *handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.presets.Delete(id); err != nil {
		if errors.Is(err, preset.ErrNotFound) {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete preset", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
