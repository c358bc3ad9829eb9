package handlers

import "net/http"

// Health is the unauthenticated liveness probe. It deliberately does not
// touch the gateway; a hosted-backend outage should not fail deploy checks.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
