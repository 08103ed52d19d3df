package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/repositories"
	"github.com/yilmazatalay/go-catalog/app/utils/sessions"
)

type AuthHandler struct {
	render   *render.Render
	userRepo repositories.UserRepositoryImpl
	sessions sessions.SessionStore
}

func NewAuthHandler(render *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{
		render:   render,
		userRepo: userRepo,
		sessions: sessionStore,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Sign In",
	})
	data["CSRFToken"] = csrf.Token(r)

	h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPost: form parsing error: %v", err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.userRepo.FindByUsername(r.Context(), username)
	if err != nil {
		log.Printf("LoginPost: failed to look up user %s: %v", username, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Login failed, please try again."), http.StatusSeeOther)
		return
	}

	if user == nil || !helpers.PasswordCompare(user.Password, []byte(password)) {
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Invalid username or password."), http.StatusSeeOther)
		return
	}

	if err := h.sessions.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPost: failed to save session for user %s: %v", user.ID, err)
		http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("Login failed, please try again."), http.StatusSeeOther)
		return
	}

	if user.IsStaff {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
