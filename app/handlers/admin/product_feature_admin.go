package admin

import (
	"errors"
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

func (h *AdminHandler) GetProductFeaturesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductFeaturePageData{ListConfig: ListConfigFor("product_feature")}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Product Feature Management"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Product Features", URL: "/admin/product-features"},
	}

	var assignments []models.ProductFeature
	var err error

	query := r.URL.Query()
	if query.Get("product_id") != "" || query.Get("feature_id") != "" {
		assignments, err = h.assignmentRepo.Filter(r.Context(), query.Get("product_id"), query.Get("feature_id"))
	} else {
		assignments, err = h.assignmentRepo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("GetProductFeaturesPage: failed to fetch assignments: %v", err)
		data.Message = "Failed to fetch product features."
		data.MessageStatus = "error"
	} else {
		rows := make([]AssignmentRow, 0, len(assignments))
		for _, assignment := range assignments {
			rows = append(rows, AssignmentRow{ProductFeature: assignment, Display: assignment.DisplayValue()})
		}
		data.Assignments = rows
	}

	if products, prodErr := h.productRepo.GetAll(r.Context()); prodErr == nil {
		data.Products = products
	}
	if features, featErr := h.featureRepo.GetAll(r.Context()); featErr == nil {
		data.Features = features
	}

	h.render.HTML(w, http.StatusOK, "admin/product_features/index", data)
}

func (h *AdminHandler) AddProductFeaturePage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductFeaturePageData{
		FormAction: "/admin/product-features/add",
		IsEdit:     false,
		AssignmentData: &ProductFeatureForm{
			ProductID: r.URL.Query().Get("product_id"),
		},
		Errors: make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)
	h.loadAssignmentFormOptions(r, data)

	data.Title = "Add Product Feature"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Product Features", URL: "/admin/product-features"},
		{Name: "Add New", URL: "/admin/product-features/add"},
	}

	h.render.HTML(w, http.StatusOK, "admin/product_features/form", data)
}

func (h *AdminHandler) AddProductFeaturePost(w http.ResponseWriter, r *http.Request) {
	var form ProductFeatureForm
	if err := r.ParseForm(); err != nil {
		log.Printf("AddProductFeaturePost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/product-features/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	form.ProductID = r.PostFormValue("product_id")
	form.FeatureID = r.PostFormValue("feature_id")
	form.ValueSelectedID = r.PostFormValue("value_selected_id")
	form.ValueCustom = r.PostFormValue("value_custom")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		h.renderAssignmentForm(w, r, "/admin/product-features/add", false, &form, helpers.FormatValidationErrors(validationErrors))
		return
	}

	assignment := &models.ProductFeature{
		ID:          uuid.New().String(),
		ProductID:   form.ProductID,
		FeatureID:   form.FeatureID,
		ValueCustom: form.ValueCustom,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if form.ValueSelectedID != "" {
		assignment.ValueSelectedID = &form.ValueSelectedID
	}

	if err := h.assignmentRepo.Create(r.Context(), assignment); err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			h.renderAssignmentForm(w, r, "/admin/product-features/add", false, &form, map[string]string{"value": verr.Message})
		case errors.Is(err, repositories.ErrDuplicateProductFeature):
			h.renderAssignmentForm(w, r, "/admin/product-features/add", false, &form, map[string]string{"feature_id": "This product already has an assignment for the chosen feature."})
		default:
			log.Printf("AddProductFeaturePost: failed to create assignment: %v", err)
			http.Redirect(w, r, fmt.Sprintf("/admin/product-features/add?status=error&message=%s", url.QueryEscape("Failed to add product feature: "+err.Error())), http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, "/admin/product-features", http.StatusSeeOther)
}

func (h *AdminHandler) EditProductFeaturePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assignmentID := vars["id"]

	assignment, err := h.assignmentRepo.GetByID(r.Context(), assignmentID)
	if err != nil || assignment == nil {
		log.Printf("EditProductFeaturePage: assignment %s not found: %v", assignmentID, err)
		http.Redirect(w, r, "/admin/product-features", http.StatusSeeOther)
		return
	}

	formData := ProductFeatureForm{
		ID:          assignment.ID,
		ProductID:   assignment.ProductID,
		FeatureID:   assignment.FeatureID,
		ValueCustom: assignment.ValueCustom,
	}
	if assignment.ValueSelectedID != nil {
		formData.ValueSelectedID = *assignment.ValueSelectedID
	}

	data := &AdminProductFeaturePageData{
		FormAction:     fmt.Sprintf("/admin/product-features/edit/%s", assignmentID),
		IsEdit:         true,
		AssignmentData: &formData,
		Errors:         make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)
	h.loadAssignmentFormOptions(r, data)

	data.Title = "Edit Product Feature"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Product Features", URL: "/admin/product-features"},
		{Name: "Edit", URL: fmt.Sprintf("/admin/product-features/edit/%s", assignmentID)},
	}

	h.render.HTML(w, http.StatusOK, "admin/product_features/form", data)
}

func (h *AdminHandler) EditProductFeaturePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assignmentID := vars["id"]

	assignment, err := h.assignmentRepo.GetByID(r.Context(), assignmentID)
	if err != nil || assignment == nil {
		log.Printf("EditProductFeaturePost: assignment %s not found for update: %v", assignmentID, err)
		http.Redirect(w, r, "/admin/product-features", http.StatusSeeOther)
		return
	}

	var form ProductFeatureForm
	if err := r.ParseForm(); err != nil {
		log.Printf("EditProductFeaturePost: form parsing error: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/product-features/edit/%s?status=error&message=%s", assignmentID, url.QueryEscape("Form parsing error.")), http.StatusSeeOther)
		return
	}

	formAction := fmt.Sprintf("/admin/product-features/edit/%s", assignmentID)
	form.ID = assignmentID
	form.ProductID = r.PostFormValue("product_id")
	form.FeatureID = r.PostFormValue("feature_id")
	form.ValueSelectedID = r.PostFormValue("value_selected_id")
	form.ValueCustom = r.PostFormValue("value_custom")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		h.renderAssignmentForm(w, r, formAction, true, &form, helpers.FormatValidationErrors(validationErrors))
		return
	}

	assignment.ProductID = form.ProductID
	assignment.FeatureID = form.FeatureID
	assignment.ValueCustom = form.ValueCustom
	if form.ValueSelectedID != "" {
		assignment.ValueSelectedID = &form.ValueSelectedID
	} else {
		assignment.ValueSelectedID = nil
	}
	assignment.Product = models.Product{}
	assignment.Feature = models.Feature{}
	assignment.ValueSelected = nil
	assignment.UpdatedAt = time.Now()

	if err := h.assignmentRepo.Update(r.Context(), assignment); err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			h.renderAssignmentForm(w, r, formAction, true, &form, map[string]string{"value": verr.Message})
		case errors.Is(err, repositories.ErrDuplicateProductFeature):
			h.renderAssignmentForm(w, r, formAction, true, &form, map[string]string{"feature_id": "This product already has an assignment for the chosen feature."})
		default:
			log.Printf("EditProductFeaturePost: failed to update assignment %s: %v", assignmentID, err)
			http.Redirect(w, r, fmt.Sprintf("%s?status=error&message=%s", formAction, url.QueryEscape("Failed to update product feature: "+err.Error())), http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, "/admin/product-features", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteProductFeaturePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assignmentID := vars["id"]

	assignment, err := h.assignmentRepo.GetByID(r.Context(), assignmentID)
	if err != nil || assignment == nil {
		log.Printf("DeleteProductFeaturePost: assignment %s not found for deletion: %v", assignmentID, err)
		http.Redirect(w, r, "/admin/product-features", http.StatusSeeOther)
		return
	}

	if err := h.assignmentRepo.Delete(r.Context(), assignmentID); err != nil {
		log.Printf("DeleteProductFeaturePost: failed to delete assignment %s: %v", assignmentID, err)
	}

	http.Redirect(w, r, "/admin/product-features", http.StatusSeeOther)
}

func (h *AdminHandler) loadAssignmentFormOptions(r *http.Request, data *AdminProductFeaturePageData) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("loadAssignmentFormOptions: failed to fetch products: %v", err)
	}
	data.Products = products

	features, err := h.featureRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("loadAssignmentFormOptions: failed to fetch features: %v", err)
	}
	data.Features = features
}

func (h *AdminHandler) renderAssignmentForm(w http.ResponseWriter, r *http.Request, formAction string, isEdit bool, form *ProductFeatureForm, formErrors map[string]string) {
	data := &AdminProductFeaturePageData{
		FormAction:     formAction,
		IsEdit:         isEdit,
		AssignmentData: form,
		Errors:         formErrors,
	}
	h.populateBaseDataForAdmin(r, data)
	h.loadAssignmentFormOptions(r, data)

	if isEdit {
		data.Title = "Edit Product Feature"
	} else {
		data.Title = "Add Product Feature"
	}

	h.render.HTML(w, http.StatusOK, "admin/product_features/form", data)
}
