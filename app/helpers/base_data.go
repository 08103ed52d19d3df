package helpers

import (
	"log"
	"net/http"

	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/models/other"
	"github.com/yilmazatalay/go-catalog/app/utils/breadcrumb"
)

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Catalog Admin"
	}
	if _, exists := pageSpecificData["IsLoggedIn"]; !exists {
		pageSpecificData["IsLoggedIn"] = false
	}
	if _, exists := pageSpecificData["User"]; !exists {
		pageSpecificData["User"] = nil
	}
	if _, exists := pageSpecificData["UserID"]; !exists {
		pageSpecificData["UserID"] = ""
	}
	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}
	if _, exists := pageSpecificData["IsAdminPage"]; !exists {
		pageSpecificData["IsAdminPage"] = false
	}
	if _, exists := pageSpecificData["Query"]; !exists {
		pageSpecificData["Query"] = r.URL.Query()
	}

	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			pageSpecificData["User"] = &other.UserForTemplate{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				IsStaff:  user.IsStaff,
			}
			pageSpecificData["IsLoggedIn"] = true
			pageSpecificData["UserID"] = user.ID

			if user.IsStaff {
				pageSpecificData["IsAdminPage"] = true
			}
		} else {
			log.Printf("GetBaseData: User in context is not of type *models.User or is nil. Value: %+v", userVal)
			pageSpecificData["User"] = nil
			pageSpecificData["IsLoggedIn"] = false
			pageSpecificData["UserID"] = ""
			pageSpecificData["IsAdminPage"] = false
		}
	}

	if status := r.URL.Query().Get("status"); status != "" {
		pageSpecificData["MessageStatus"] = status
	} else {
		pageSpecificData["MessageStatus"] = ""
	}
	if msg := r.URL.Query().Get("message"); msg != "" {
		pageSpecificData["Message"] = msg
	} else {
		pageSpecificData["Message"] = ""
	}

	return pageSpecificData
}
