package http

import "net/http"

// GET /api/health
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "Quiz Generation API is running",
		})
	}
}
