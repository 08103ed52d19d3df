package other

import (
	"net/url"

	"github.com/yilmazatalay/go-catalog/app/utils/breadcrumb"
)

type UserForTemplate struct {
	ID       string
	Username string
	Email    string
	IsStaff  bool
}

type BasePageData struct {
	Title         string
	IsLoggedIn    bool
	User          *UserForTemplate
	UserID        string
	CSRFToken     string
	Message       string
	MessageStatus string
	Query         url.Values
	Breadcrumbs   []breadcrumb.Breadcrumb
	IsAdminPage   bool
	CurrentPath   string
	IsAdminRoute  bool
}
