package telegram

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NewRouter builds the webhook HTTP surface: POST / receives
// platform-pushed updates, GET / answers liveness probes.
func NewRouter(d *Dispatcher) chi.Router {
	r := chi.NewRouter()
	r.Get("/", handleHealth)
	r.Post("/", handleUpdate(d))
	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleUpdate(d *Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			slog.Warn("undecodable webhook payload", "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"status": "bad request"})
			return
		}

		d.Dispatch(r.Context(), update)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("writing response", "error", err)
	}
}
