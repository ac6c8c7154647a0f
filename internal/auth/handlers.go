package auth

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginHandler checks the credentials and, on success, sets the
// access/refresh cookie pair. All failures surface the same message so
// the response never reveals which field was wrong.
func LoginHandler(tm *TokenManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if _, err := mail.ParseAddress(req.Email); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid email address")
			return
		}
		if len(req.Password) < 6 {
			utils.WriteError(w, http.StatusBadRequest, "Password must be at least 6 characters")
			return
		}

		var user User
		if err := db.DB.First(&user, "email = ?", req.Email).Error; err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		ident := utils.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
		if err := tm.Issue(w, ident); err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]userResponse{
			"user": {ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role},
		})
	}
}

// LogoutHandler deletes both auth cookies.
func LogoutHandler(tm *TokenManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tm.Clear(w)
		utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// MeHandler returns the user row behind the resolved session.
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var user User
		if err := db.DB.First(&user, "id = ?", ident.UserID).Error; err != nil {
			utils.WriteError(w, http.StatusNotFound, "User not found")
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]userResponse{
			"user": {ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role},
		})
	}
}
