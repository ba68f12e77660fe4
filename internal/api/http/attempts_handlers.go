package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Sambhav234/Quiz-Generator/internal/attempts"
	"github.com/Sambhav234/Quiz-Generator/internal/rbac"
)

// GET /api/attempts?subject=...&limit=50&offset=0
//
// Anyone below admin only ever sees their own history; the subject
// filter is forced to the caller. With auth disabled there is no caller
// identity and the listing is open, like the rest of the API.
func ListAttemptsHandler(store attempts.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := rbac.RoleFromContext(r.Context())
		sub := rbac.SubjectFromContext(r.Context())

		subject := strings.TrimSpace(r.URL.Query().Get("subject"))
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		offset := parseIntDefault(r.URL.Query().Get("offset"), 0)

		if role != "admin" && sub != "" {
			subject = sub
		}

		list, err := store.List(r.Context(), attempts.ListOpts{Subject: subject, Limit: limit, Offset: offset})
		if err != nil {
			respondError(w, http.StatusInternalServerError, "list attempts failed")
			return
		}
		if list == nil {
			list = []attempts.Attempt{}
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"attempts": list,
			"count":    len(list),
		})
	}
}

// GET /api/attempts/{attemptID}
func GetAttemptHandler(store attempts.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), chi.URLParam(r, "attemptID"))
		if errors.Is(err, attempts.ErrNotFound) {
			respondError(w, http.StatusNotFound, "attempt not found")
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "get attempt failed")
			return
		}
		if !mayTouchAttempt(r, a) {
			respondError(w, http.StatusForbidden, "forbidden")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "attempt": a})
	}
}

// DELETE /api/attempts/{attemptID}
func DeleteAttemptHandler(store attempts.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "attemptID")
		a, err := store.Get(r.Context(), id)
		if errors.Is(err, attempts.ErrNotFound) {
			respondError(w, http.StatusNotFound, "attempt not found")
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "delete attempt failed")
			return
		}
		if !mayTouchAttempt(r, a) {
			respondError(w, http.StatusForbidden, "forbidden")
			return
		}
		if err := store.Delete(r.Context(), id); err != nil && !errors.Is(err, attempts.ErrNotFound) {
			respondError(w, http.StatusInternalServerError, "delete attempt failed")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// DELETE /api/attempts  (admin; rbac enforced at the route)
func PurgeAttemptsHandler(store attempts.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Purge(r.Context()); err != nil {
			respondError(w, http.StatusInternalServerError, "purge attempts failed")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// mayTouchAttempt is the own-or-admin check. An empty subject means auth
// is disabled and every attempt is reachable.
func mayTouchAttempt(r *http.Request, a attempts.Attempt) bool {
	role := rbac.RoleFromContext(r.Context())
	sub := rbac.SubjectFromContext(r.Context())
	return role == "admin" || sub == "" || a.Subject == sub
}
