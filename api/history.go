package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"domain-swap/history"
)

func (h *handler) listHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.history.List())
}

func (h *handler) getHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	e, err := h.history.Get(id)
	if err != nil {
		http.Error(w, "history entry not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

func (h *handler) deleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.history.Delete(id); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			http.Error(w, "history entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete history entry", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(); err != nil {
		http.Error(w, "failed to clear history", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
