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

func (h *AdminHandler) GetFeatureValuesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminFeatureValuePageData{ListConfig: ListConfigFor("feature_value")}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Feature Value Management"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Feature Values", URL: "/admin/feature-values"},
	}

	var values []models.FeatureValue
	var err error

	query := r.URL.Query()
	if keyword := query.Get("q"); keyword != "" {
		values, err = h.featureValueRepo.Search(r.Context(), keyword)
	} else if featureID := query.Get("feature_id"); featureID != "" {
		values, err = h.featureValueRepo.GetByFeature(r.Context(), featureID)
	} else {
		values, err = h.featureValueRepo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("GetFeatureValuesPage: failed to fetch feature values: %v", err)
		data.Message = "Failed to fetch feature values."
		data.MessageStatus = "error"
	} else {
		data.Values = values
	}

	if features, featErr := h.featureRepo.GetAll(r.Context()); featErr == nil {
		data.Features = features
	}

	h.render.HTML(w, http.StatusOK, "admin/feature_values/index", data)
}

func (h *AdminHandler) AddFeatureValuePage(w http.ResponseWriter, r *http.Request) {
	data := &AdminFeatureValuePageData{
		FormAction: "/admin/feature-values/add",
		IsEdit:     false,
		ValueData:  &FeatureValueForm{FeatureID: r.URL.Query().Get("feature_id")},
		Errors:     make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	features, err := h.featureRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AddFeatureValuePage: failed to fetch features: %v", err)
		data.Message = "Failed to load features."
		data.MessageStatus = "error"
	}
	data.Features = features

	data.Title = "Add New Feature Value"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Feature Values", URL: "/admin/feature-values"},
		{Name: "Add New", URL: "/admin/feature-values/add"},
	}

	h.render.HTML(w, http.StatusOK, "admin/feature_values/form", data)
}

func (h *AdminHandler) AddFeatureValuePost(w http.ResponseWriter, r *http.Request) {
	var form FeatureValueForm
	if err := r.ParseForm(); err != nil {
		log.Printf("AddFeatureValuePost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/feature-values/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	form.FeatureID = r.PostFormValue("feature_id")
	form.Value = r.PostFormValue("value")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminFeatureValuePageData{
			FormAction: "/admin/feature-values/add",
			IsEdit:     false,
			ValueData:  &form,
			Errors:     helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Add New Feature Value"
		if features, featErr := h.featureRepo.GetAll(r.Context()); featErr == nil {
			data.Features = features
		}
		h.render.HTML(w, http.StatusOK, "admin/feature_values/form", data)
		return
	}

	newValue := &models.FeatureValue{
		ID:        uuid.New().String(),
		FeatureID: form.FeatureID,
		Value:     form.Value,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.featureValueRepo.Create(r.Context(), newValue); err != nil {
		log.Printf("AddFeatureValuePost: failed to create feature value: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/feature-values/add?status=error&message=%s", url.QueryEscape("Failed to add feature value: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/feature-values", http.StatusSeeOther)
}

func (h *AdminHandler) EditFeatureValuePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	valueID := vars["id"]

	value, err := h.featureValueRepo.GetByID(r.Context(), valueID)
	if err != nil || value == nil {
		log.Printf("EditFeatureValuePage: feature value %s not found: %v", valueID, err)
		http.Redirect(w, r, "/admin/feature-values", http.StatusSeeOther)
		return
	}

	formData := FeatureValueForm{
		ID:        value.ID,
		FeatureID: value.FeatureID,
		Value:     value.Value,
	}

	data := &AdminFeatureValuePageData{
		FormAction: fmt.Sprintf("/admin/feature-values/edit/%s", valueID),
		IsEdit:     true,
		ValueData:  &formData,
		Errors:     make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	if features, featErr := h.featureRepo.GetAll(r.Context()); featErr == nil {
		data.Features = features
	}

	data.Title = "Edit Feature Value"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Feature Values", URL: "/admin/feature-values"},
		{Name: "Edit", URL: fmt.Sprintf("/admin/feature-values/edit/%s", valueID)},
	}

	h.render.HTML(w, http.StatusOK, "admin/feature_values/form", data)
}

func (h *AdminHandler) EditFeatureValuePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	valueID := vars["id"]

	value, err := h.featureValueRepo.GetByID(r.Context(), valueID)
	if err != nil || value == nil {
		log.Printf("EditFeatureValuePost: feature value %s not found for update: %v", valueID, err)
		http.Redirect(w, r, "/admin/feature-values", http.StatusSeeOther)
		return
	}

	var form FeatureValueForm
	if err := r.ParseForm(); err != nil {
		log.Printf("EditFeatureValuePost: form parsing error: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/feature-values/edit/%s?status=error&message=%s", valueID, url.QueryEscape("Form parsing error.")), http.StatusSeeOther)
		return
	}

	form.ID = valueID
	form.FeatureID = r.PostFormValue("feature_id")
	form.Value = r.PostFormValue("value")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminFeatureValuePageData{
			FormAction: fmt.Sprintf("/admin/feature-values/edit/%s", valueID),
			IsEdit:     true,
			ValueData:  &form,
			Errors:     helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Edit Feature Value"
		if features, featErr := h.featureRepo.GetAll(r.Context()); featErr == nil {
			data.Features = features
		}
		h.render.HTML(w, http.StatusOK, "admin/feature_values/form", data)
		return
	}

	value.FeatureID = form.FeatureID
	value.Value = form.Value
	value.Feature = models.Feature{}
	value.UpdatedAt = time.Now()

	if err := h.featureValueRepo.Update(r.Context(), value); err != nil {
		log.Printf("EditFeatureValuePost: failed to update feature value %s: %v", valueID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/feature-values/edit/%s?status=error&message=%s", valueID, url.QueryEscape("Failed to update feature value: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/feature-values", http.StatusSeeOther)
}

// DeleteFeatureValuePost removes the value; assignments that selected
// it survive with their selection cleared.
func (h *AdminHandler) DeleteFeatureValuePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	valueID := vars["id"]

	value, err := h.featureValueRepo.GetByID(r.Context(), valueID)
	if err != nil || value == nil {
		log.Printf("DeleteFeatureValuePost: feature value %s not found for deletion: %v", valueID, err)
		http.Redirect(w, r, "/admin/feature-values", http.StatusSeeOther)
		return
	}

	if err := h.featureValueRepo.Delete(r.Context(), valueID); err != nil {
		log.Printf("DeleteFeatureValuePost: failed to delete feature value %s: %v", valueID, err)
	}

	http.Redirect(w, r, "/admin/feature-values", http.StatusSeeOther)
}
