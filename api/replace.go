package api

import (
	"encoding/json"
	"log"
	"net/http"

	"domain-swap/rewrite"
)

type replaceRequest struct {
	URLs      string `json:"urls"`
	OldDomain string `json:"oldDomain"`
	NewDomain string `json:"newDomain"`
}

type replaceResponse struct {
	Output        string `json:"output"`
	InvalidCount  int    `json:"invalidCount"`
	ReplacedCount int    `json:"replacedCount"`
}

func (h *handler) replaceDomains(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	oldDomain := rewrite.StripProtocol(req.OldDomain)
	newDomain := rewrite.StripProtocol(req.NewDomain)
	if req.URLs == "" || oldDomain == "" || newDomain == "" {
		http.Error(w, "urls, oldDomain and newDomain are required", http.StatusBadRequest)
		return
	}

	res := rewrite.Replace(req.URLs, oldDomain, newDomain)

	// Invalid lines inside the list do not block history recording,
	// and a persistence failure does not void the replace result.
	if _, err := h.history.Add(req.URLs, oldDomain, newDomain); err != nil {
		log.Printf("history record error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(replaceResponse{
		Output:        res.Output,
		InvalidCount:  res.InvalidCount,
		ReplacedCount: res.ReplacedCount,
	})
}

func (h *handler) extractDomain(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URLs string `json:"urls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	domain, ok := rewrite.ExtractCommonDomain(req.URLs)
	if !ok {
		domain = ""
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"domain": domain})
}
