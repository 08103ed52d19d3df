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

func (h *AdminHandler) GetFeaturesPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminFeaturePageData{ListConfig: ListConfigFor("feature")}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Feature Management"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Features", URL: "/admin/features"},
	}

	var features []models.Feature
	var err error

	query := r.URL.Query()
	if keyword := query.Get("q"); keyword != "" {
		features, err = h.featureRepo.Search(r.Context(), keyword)
	} else if query.Get("input_type") != "" || query.Get("unit") != "" {
		features, err = h.featureRepo.Filter(r.Context(), query.Get("input_type"), query.Get("unit"))
	} else {
		features, err = h.featureRepo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("GetFeaturesPage: failed to fetch features: %v", err)
		data.Message = "Failed to fetch features."
		data.MessageStatus = "error"
	} else {
		data.Features = features
	}

	h.render.HTML(w, http.StatusOK, "admin/features/index", data)
}

func (h *AdminHandler) AddFeaturePage(w http.ResponseWriter, r *http.Request) {
	data := &AdminFeaturePageData{
		FormAction:  "/admin/features/add",
		IsEdit:      false,
		FeatureData: &FeatureForm{InputType: models.InputTypeSelect},
		Errors:      make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Add New Feature"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Features", URL: "/admin/features"},
		{Name: "Add New", URL: "/admin/features/add"},
	}

	h.render.HTML(w, http.StatusOK, "admin/features/form", data)
}

func (h *AdminHandler) AddFeaturePost(w http.ResponseWriter, r *http.Request) {
	var form FeatureForm
	if err := r.ParseForm(); err != nil {
		log.Printf("AddFeaturePost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/features/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	form.Name = r.PostFormValue("name")
	form.InputType = r.PostFormValue("input_type")
	if form.InputType == "" {
		form.InputType = models.InputTypeSelect
	}
	form.Unit = r.PostFormValue("unit")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminFeaturePageData{
			FormAction:  "/admin/features/add",
			IsEdit:      false,
			FeatureData: &form,
			Errors:      helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Add New Feature"
		h.render.HTML(w, http.StatusOK, "admin/features/form", data)
		return
	}

	newFeature := &models.Feature{
		ID:        uuid.New().String(),
		Name:      form.Name,
		InputType: form.InputType,
		Unit:      form.Unit,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.featureRepo.Create(r.Context(), newFeature); err != nil {
		log.Printf("AddFeaturePost: failed to create feature: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/features/add?status=error&message=%s", url.QueryEscape("Failed to add feature: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
}

func (h *AdminHandler) EditFeaturePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	featureID := vars["id"]

	feature, err := h.featureRepo.GetByID(r.Context(), featureID)
	if err != nil || feature == nil {
		log.Printf("EditFeaturePage: feature %s not found: %v", featureID, err)
		http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
		return
	}

	formData := FeatureForm{
		ID:        feature.ID,
		Name:      feature.Name,
		InputType: feature.InputType,
		Unit:      feature.Unit,
	}

	data := &AdminFeaturePageData{
		FormAction:  fmt.Sprintf("/admin/features/edit/%s", featureID),
		IsEdit:      true,
		FeatureData: &formData,
		Errors:      make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Edit Feature"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Features", URL: "/admin/features"},
		{Name: "Edit", URL: fmt.Sprintf("/admin/features/edit/%s", featureID)},
	}

	h.render.HTML(w, http.StatusOK, "admin/features/form", data)
}

func (h *AdminHandler) EditFeaturePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	featureID := vars["id"]

	feature, err := h.featureRepo.GetByID(r.Context(), featureID)
	if err != nil || feature == nil {
		log.Printf("EditFeaturePost: feature %s not found for update: %v", featureID, err)
		http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
		return
	}

	var form FeatureForm
	if err := r.ParseForm(); err != nil {
		log.Printf("EditFeaturePost: form parsing error: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/features/edit/%s?status=error&message=%s", featureID, url.QueryEscape("Form parsing error.")), http.StatusSeeOther)
		return
	}

	form.ID = featureID
	form.Name = r.PostFormValue("name")
	form.InputType = r.PostFormValue("input_type")
	form.Unit = r.PostFormValue("unit")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminFeaturePageData{
			FormAction:  fmt.Sprintf("/admin/features/edit/%s", featureID),
			IsEdit:      true,
			FeatureData: &form,
			Errors:      helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Edit Feature"
		h.render.HTML(w, http.StatusOK, "admin/features/form", data)
		return
	}

	feature.Name = form.Name
	feature.InputType = form.InputType
	feature.Unit = form.Unit
	feature.Values = nil
	feature.UpdatedAt = time.Now()

	if err := h.featureRepo.Update(r.Context(), feature); err != nil {
		log.Printf("EditFeaturePost: failed to update feature %s: %v", featureID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/features/edit/%s?status=error&message=%s", featureID, url.QueryEscape("Failed to update feature: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
}

// DeleteFeaturePost removes the feature with its values and every
// product assignment referencing it.
func (h *AdminHandler) DeleteFeaturePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	featureID := vars["id"]

	feature, err := h.featureRepo.GetByID(r.Context(), featureID)
	if err != nil || feature == nil {
		log.Printf("DeleteFeaturePost: feature %s not found for deletion: %v", featureID, err)
		http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
		return
	}

	if err := h.featureRepo.Delete(r.Context(), featureID); err != nil {
		log.Printf("DeleteFeaturePost: failed to delete feature %s: %v", featureID, err)
	}

	http.Redirect(w, r, "/admin/features", http.StatusSeeOther)
}
