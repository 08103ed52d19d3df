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
	"github.com/yilmazatalay/go-catalog/app/repositories"
	"github.com/yilmazatalay/go-catalog/app/utils/breadcrumb"
)

func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{ListConfig: ListConfigFor("category")}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Category Management"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Categories", URL: "/admin/categories"},
	}

	var categories []models.Category
	var err error

	query := r.URL.Query()
	if keyword := query.Get("q"); keyword != "" {
		categories, err = h.categoryRepo.Search(r.Context(), keyword)
	} else if query.Get("is_active") != "" || query.Get("parent_id") != "" {
		var isActive *bool
		if raw := query.Get("is_active"); raw != "" {
			active := raw == "true" || raw == "1"
			isActive = &active
		}
		categories, err = h.categoryRepo.Filter(r.Context(), isActive, query.Get("parent_id"))
	} else {
		categories, err = h.categoryRepo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("GetCategoriesPage: failed to fetch categories: %v", err)
		data.Message = "Failed to fetch categories."
		data.MessageStatus = "error"
	} else {
		rows := make([]CategoryRow, 0, len(categories))
		for _, category := range categories {
			path, pathErr := h.categoryRepo.Path(r.Context(), category.ID)
			if pathErr != nil {
				log.Printf("GetCategoriesPage: failed to resolve path for %s: %v", category.ID, pathErr)
				path = category.Name
			}
			rows = append(rows, CategoryRow{Category: category, Path: path})
		}
		data.Categories = rows
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/index", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminCategoryPageData{
		FormAction:   "/admin/categories/add",
		IsEdit:       false,
		CategoryData: &CategoryForm{IsActive: true},
		Errors:       make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	parents, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AddCategoryPage: failed to fetch parent options: %v", err)
		data.Message = "Failed to load parent categories."
		data.MessageStatus = "error"
	}
	data.ParentOptions = parents

	data.Title = "Add New Category"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"}, {Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Categories", URL: "/admin/categories"}, {Name: "Add New", URL: "/admin/categories/add"},
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	if err := r.ParseForm(); err != nil {
		log.Printf("AddCategoryPost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/categories/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}
	form.Name = r.PostFormValue("name")
	form.IsActive = r.PostFormValue("is_active") != ""
	form.ParentID = r.PostFormValue("parent_id")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminCategoryPageData{
			FormAction:   "/admin/categories/add",
			IsEdit:       false,
			CategoryData: &form,
			Errors:       helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Add New Category"
		if parents, parentErr := h.categoryRepo.GetAll(r.Context()); parentErr == nil {
			data.ParentOptions = parents
		}
		h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
		return
	}

	newCategory := &models.Category{
		ID:        uuid.New().String(),
		Name:      form.Name,
		IsActive:  form.IsActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if form.ParentID != "" {
		newCategory.ParentID = &form.ParentID
	}

	if err := h.categoryRepo.Create(r.Context(), newCategory); err != nil {
		log.Printf("AddCategoryPost: failed to create category: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/categories/add?status=error&message=%s", url.QueryEscape("Failed to add category: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("EditCategoryPage: category %s not found: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	formData := CategoryForm{
		ID:       category.ID,
		Name:     category.Name,
		IsActive: category.IsActive,
	}
	if category.ParentID != nil {
		formData.ParentID = *category.ParentID
	}

	data := &AdminCategoryPageData{
		FormAction:   fmt.Sprintf("/admin/categories/edit/%s", categoryID),
		IsEdit:       true,
		CategoryData: &formData,
		Errors:       make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	parents, parentErr := h.categoryRepo.GetAll(r.Context())
	if parentErr != nil {
		log.Printf("EditCategoryPage: failed to fetch parent options: %v", parentErr)
	}
	data.ParentOptions = parents

	data.Title = "Edit Category"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"}, {Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Categories", URL: "/admin/categories"}, {Name: "Edit", URL: fmt.Sprintf("/admin/categories/edit/%s", categoryID)},
	}

	h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("EditCategoryPost: category %s not found for update: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	var form CategoryForm
	if err := r.ParseForm(); err != nil {
		log.Printf("EditCategoryPost: form parsing error: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/categories/edit/%s?status=error&message=%s", categoryID, url.QueryEscape("Form parsing error.")), http.StatusSeeOther)
		return
	}

	form.ID = categoryID
	form.Name = r.PostFormValue("name")
	form.IsActive = r.PostFormValue("is_active") != ""
	form.ParentID = r.PostFormValue("parent_id")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminCategoryPageData{
			FormAction:   fmt.Sprintf("/admin/categories/edit/%s", categoryID),
			IsEdit:       true,
			CategoryData: &form,
			Errors:       helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Edit Category"
		if parents, parentErr := h.categoryRepo.GetAll(r.Context()); parentErr == nil {
			data.ParentOptions = parents
		}
		h.render.HTML(w, http.StatusOK, "admin/categories/form", data)
		return
	}

	category.Name = form.Name
	category.IsActive = form.IsActive
	if form.ParentID != "" {
		category.ParentID = &form.ParentID
	} else {
		category.ParentID = nil
	}
	category.Parent = nil
	category.UpdatedAt = time.Now()

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		message := "Failed to update category: " + err.Error()
		if err == repositories.ErrCategoryCycle {
			message = "The chosen parent would make this category its own ancestor."
		}
		log.Printf("EditCategoryPost: failed to update category %s: %v", categoryID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/categories/edit/%s?status=error&message=%s", categoryID, url.QueryEscape(message)), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// DeleteCategoryPost removes the category and every descendant below it.
func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID := vars["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil || category == nil {
		log.Printf("DeleteCategoryPost: category %s not found for deletion: %v", categoryID, err)
		http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		log.Printf("DeleteCategoryPost: failed to delete category %s: %v", categoryID, err)
	}

	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}
