package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/repositories"
)

func AdminAuthMiddleware(userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
			if !ok || userID == "" {
				log.Println("AdminAuthMiddleware: User ID not found in context or empty. Redirecting to login.")
				http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("You must be logged in to access the admin panel."), http.StatusFound)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: Error finding user %s: %v. Redirecting to login.", userID, err)
				http.Redirect(w, r, "/login?status=error&message="+url.QueryEscape("User not found or session invalid."), http.StatusFound)
				return
			}

			if !user.IsStaff {
				log.Printf("AdminAuthMiddleware: User %s (%s) attempted to access admin panel without staff flag.", user.ID, user.Email)
				http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("You do not have permission to access this page."), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
