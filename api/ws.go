package api

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"domain-swap/rewrite"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMessage struct {
	Type   string `json:"type"`
	URLs   string `json:"urls,omitempty"`
	Domain string `json:"domain"`
}

// handleSuggestWS streams common-domain suggestions back to the page.
// The client sends an "input" message whenever the URL text changes;
// each one is answered with a "suggestion" message carrying the
// extracted domain, empty when no hostname clears the majority bar.
// Whether a suggestion is applied is the client's call — the
// auto-extract toggle and the old-domain field live in the form.
func (h *handler) handleSuggestWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// Client disconnected.
			return
		}
		if msg.Type != "input" {
			continue
		}

		domain, ok := rewrite.ExtractCommonDomain(msg.URLs)
		if !ok {
			domain = ""
		}
		if err := conn.WriteJSON(wsMessage{Type: "suggestion", Domain: domain}); err != nil {
			return
		}
	}
}
