package controllers

import (
	"encoding/json"
	"net/http"

	"floatchat/floatchat/conversation"
)

type HealthController struct {
	store *conversation.SessionStore
}

func NewHealthController(store *conversation.SessionStore) *HealthController {
	return &HealthController{store: store}
}

// HealthCheck reports liveness plus the number of chat sessions currently
// held in memory.
func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "ok",
		"service":  "floatchat",
		"sessions": len(h.store.All()),
	})
}
