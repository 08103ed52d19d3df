package admin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/utils/breadcrumb"
)

func (h *AdminHandler) GetUsersPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminUserPageData{ListConfig: ListConfigFor("user")}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "User Management"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Users", URL: "/admin/users"},
	}

	var users []models.User
	var err error

	query := r.URL.Query()
	if keyword := query.Get("q"); keyword != "" {
		users, err = h.userRepo.Search(r.Context(), keyword)
	} else if raw := query.Get("is_staff"); raw != "" {
		isStaff := raw == "true" || raw == "1"
		users, err = h.userRepo.Filter(r.Context(), &isStaff)
	} else {
		users, err = h.userRepo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("GetUsersPage: failed to fetch users: %v", err)
		data.Message = "Failed to fetch users."
		data.MessageStatus = "error"
	} else {
		data.Users = users
	}

	h.render.HTML(w, http.StatusOK, "admin/users/index", data)
}

func (h *AdminHandler) AddUserPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminUserPageData{
		FormAction: "/admin/users/add",
		IsEdit:     false,
		UserData:   &UserForm{},
		Errors:     make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Add New User"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Users", URL: "/admin/users"},
		{Name: "Add New", URL: "/admin/users/add"},
	}

	h.render.HTML(w, http.StatusOK, "admin/users/form", data)
}

func (h *AdminHandler) AddUserPost(w http.ResponseWriter, r *http.Request) {
	var form UserForm
	if err := r.ParseForm(); err != nil {
		log.Printf("AddUserPost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/users/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	form.Username = r.PostFormValue("username")
	form.Email = r.PostFormValue("email")
	form.Password = r.PostFormValue("password")
	form.IsStaff = r.PostFormValue("is_staff") != ""
	form.Bio = r.PostFormValue("bio")

	formErrors := map[string]string{}
	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		formErrors = helpers.FormatValidationErrors(validationErrors)
	}
	if form.Password == "" {
		formErrors["password"] = "Password is required for a new user."
	}

	if len(formErrors) > 0 {
		data := &AdminUserPageData{
			FormAction: "/admin/users/add",
			IsEdit:     false,
			UserData:   &form,
			Errors:     formErrors,
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Add New User"
		h.render.HTML(w, http.StatusOK, "admin/users/form", data)
		return
	}

	newUser := &models.User{
		ID:        uuid.New().String(),
		Username:  form.Username,
		Email:     form.Email,
		Password:  helpers.HashPassword(form.Password),
		IsStaff:   form.IsStaff,
		Bio:       form.Bio,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.userRepo.Create(r.Context(), newUser); err != nil {
		log.Printf("AddUserPost: failed to create user: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/users/add?status=error&message=%s", url.QueryEscape("Failed to add user: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *AdminHandler) EditUserPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("EditUserPage: user %s not found: %v", userID, err)
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	formData := UserForm{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
		Bio:      user.Bio,
	}

	data := &AdminUserPageData{
		FormAction: fmt.Sprintf("/admin/users/edit/%s", userID),
		IsEdit:     true,
		UserData:   &formData,
		Errors:     make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Edit User"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Users", URL: "/admin/users"},
		{Name: "Edit", URL: fmt.Sprintf("/admin/users/edit/%s", userID)},
	}

	h.render.HTML(w, http.StatusOK, "admin/users/form", data)
}

func (h *AdminHandler) EditUserPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("EditUserPost: user %s not found for update: %v", userID, err)
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	var form UserForm
	if err := r.ParseForm(); err != nil {
		log.Printf("EditUserPost: form parsing error: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/users/edit/%s?status=error&message=%s", userID, url.QueryEscape("Form parsing error.")), http.StatusSeeOther)
		return
	}

	form.ID = userID
	form.Username = r.PostFormValue("username")
	form.Email = r.PostFormValue("email")
	form.Password = r.PostFormValue("password")
	form.IsStaff = r.PostFormValue("is_staff") != ""
	form.Bio = r.PostFormValue("bio")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminUserPageData{
			FormAction: fmt.Sprintf("/admin/users/edit/%s", userID),
			IsEdit:     true,
			UserData:   &form,
			Errors:     helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Edit User"
		h.render.HTML(w, http.StatusOK, "admin/users/form", data)
		return
	}

	user.Username = form.Username
	user.Email = form.Email
	user.IsStaff = form.IsStaff
	user.Bio = form.Bio
	if form.Password != "" {
		user.Password = helpers.HashPassword(form.Password)
	}
	user.UpdatedAt = time.Now()

	if err := h.userRepo.Update(r.Context(), user); err != nil {
		log.Printf("EditUserPost: failed to update user %s: %v", userID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/users/edit/%s?status=error&message=%s", userID, url.QueryEscape("Failed to update user: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteUserPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["id"]

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		log.Printf("DeleteUserPost: user %s not found for deletion: %v", userID, err)
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	if err := h.userRepo.Delete(r.Context(), userID); err != nil {
		log.Printf("DeleteUserPost: failed to delete user %s: %v", userID, err)
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
