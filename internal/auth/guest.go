package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	authmw "github.com/Sambhav234/Quiz-Generator/internal/auth/middleware"
)

const guestCookie = "qg_guest_id"

// GuestLoginHandler hands out a guest token without any signup. The
// guest id is pinned to the browser with a cookie so a returning
// visitor keeps the same attempt history.
func GuestLoginHandler(a *authmw.AuthService) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		Username    string `json:"username"`
	}
	issue := func(w http.ResponseWriter, userID, username string) {
		tok, err := a.IssueJWT(userID, "guest")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     guestCookie,
			Value:    userID,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, Username: username})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		// 1) Reuse existing guest identity from cookie
		if c, err := r.Cookie(guestCookie); err == nil && strings.HasPrefix(c.Value, "guest|") {
			issue(w, c.Value, guestName(c.Value))
			return
		}

		// 2) Create a new guest
		sfx := strconv.FormatInt(time.Now().UnixNano(), 36)
		issue(w, "guest|"+sfx, "guest-"+sfx[len(sfx)-6:])
	}
}

func guestName(userID string) string {
	sfx := strings.TrimPrefix(userID, "guest|")
	if len(sfx) > 6 {
		sfx = sfx[len(sfx)-6:]
	}
	return "guest-" + sfx
}
