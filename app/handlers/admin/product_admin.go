package admin

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/repositories"
	"github.com/yilmazatalay/go-catalog/app/utils/breadcrumb"
)

func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{ListConfig: ListConfigFor("product")}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Product Management"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Products", URL: "/admin/products"},
	}

	var products []models.Product
	var err error

	query := r.URL.Query()
	if keyword := query.Get("q"); keyword != "" {
		products, err = h.productRepo.Search(r.Context(), keyword)
	} else if query.Get("stock") != "" || query.Get("min_price") != "" || query.Get("max_price") != "" {
		var filter repositories.ProductFilter
		if raw := query.Get("stock"); raw != "" {
			if stock, convErr := strconv.Atoi(raw); convErr == nil {
				filter.Stock = &stock
			}
		}
		if raw := query.Get("min_price"); raw != "" {
			if price, convErr := decimal.NewFromString(raw); convErr == nil {
				filter.MinPrice = &price
			}
		}
		if raw := query.Get("max_price"); raw != "" {
			if price, convErr := decimal.NewFromString(raw); convErr == nil {
				filter.MaxPrice = &price
			}
		}
		products, err = h.productRepo.Filter(r.Context(), filter)
	} else {
		products, err = h.productRepo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("GetProductsPage: failed to fetch products: %v", err)
		data.Message = "Failed to fetch products."
		data.MessageStatus = "error"
	} else {
		data.Products = products
	}

	h.render.HTML(w, http.StatusOK, "admin/products/index", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminProductPageData{
		FormAction:  "/admin/products/add",
		IsEdit:      false,
		ProductData: &ProductForm{Stock: "0"},
		Errors:      make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Add New Product"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Products", URL: "/admin/products"},
		{Name: "Add New", URL: "/admin/products/add"},
	}

	h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := r.ParseForm(); err != nil {
		log.Printf("AddProductPost: form parsing error: %v", err)
		http.Redirect(w, r, "/admin/products/add?status=error&message="+url.QueryEscape("Form parsing error."), http.StatusSeeOther)
		return
	}

	form.Name = r.PostFormValue("name")
	form.Description = r.PostFormValue("description")
	form.Stock = r.PostFormValue("stock")
	form.Price = r.PostFormValue("price")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminProductPageData{
			FormAction:  "/admin/products/add",
			IsEdit:      false,
			ProductData: &form,
			Errors:      helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Add New Product"
		h.render.HTML(w, http.StatusOK, "admin/products/form", data)
		return
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		data := &AdminProductPageData{
			FormAction:  "/admin/products/add",
			IsEdit:      false,
			ProductData: &form,
			Errors:      map[string]string{"price": "Price must be a valid decimal number."},
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Add New Product"
		h.render.HTML(w, http.StatusOK, "admin/products/form", data)
		return
	}

	stock := 0
	if form.Stock != "" {
		stock, _ = strconv.Atoi(form.Stock)
	}

	newProduct := &models.Product{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Description: form.Description,
		Stock:       stock,
		Price:       price.Round(2),
		Slug:        helpers.GenerateSlug(form.Name),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.productRepo.Create(r.Context(), newProduct); err != nil {
		log.Printf("AddProductPost: failed to create product: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/products/add?status=error&message=%s", url.QueryEscape("Failed to add product: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("EditProductPage: product %s not found: %v", productID, err)
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	formData := ProductForm{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Stock:       strconv.Itoa(product.Stock),
		Price:       product.Price.StringFixed(2),
		Slug:        product.Slug,
	}

	data := &AdminProductPageData{
		FormAction:  fmt.Sprintf("/admin/products/edit/%s", productID),
		IsEdit:      true,
		ProductData: &formData,
		Errors:      make(map[string]string),
	}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Edit Product"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
		{Name: "Products", URL: "/admin/products"},
		{Name: "Edit", URL: fmt.Sprintf("/admin/products/edit/%s", productID)},
	}

	h.render.HTML(w, http.StatusOK, "admin/products/form", data)
}

func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("EditProductPost: product %s not found for update: %v", productID, err)
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	var form ProductForm
	if err := r.ParseForm(); err != nil {
		log.Printf("EditProductPost: form parsing error: %v", err)
		http.Redirect(w, r, fmt.Sprintf("/admin/products/edit/%s?status=error&message=%s", productID, url.QueryEscape("Form parsing error.")), http.StatusSeeOther)
		return
	}

	form.ID = productID
	form.Name = r.PostFormValue("name")
	form.Description = r.PostFormValue("description")
	form.Stock = r.PostFormValue("stock")
	form.Price = r.PostFormValue("price")

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)

		data := &AdminProductPageData{
			FormAction:  fmt.Sprintf("/admin/products/edit/%s", productID),
			IsEdit:      true,
			ProductData: &form,
			Errors:      helpers.FormatValidationErrors(validationErrors),
		}
		h.populateBaseDataForAdmin(r, data)
		data.Title = "Edit Product"
		h.render.HTML(w, http.StatusOK, "admin/products/form", data)
		return
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		http.Redirect(w, r, fmt.Sprintf("/admin/products/edit/%s?status=error&message=%s", productID, url.QueryEscape("Price must be a valid decimal number.")), http.StatusSeeOther)
		return
	}

	if product.Name != form.Name {
		product.Slug = helpers.GenerateSlug(form.Name)
	}
	product.Name = form.Name
	product.Description = form.Description
	if form.Stock != "" {
		product.Stock, _ = strconv.Atoi(form.Stock)
	}
	product.Price = price.Round(2)
	product.UpdatedAt = time.Now()

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("EditProductPost: failed to update product %s: %v", productID, err)
		http.Redirect(w, r, fmt.Sprintf("/admin/products/edit/%s?status=error&message=%s", productID, url.QueryEscape("Failed to update product: "+err.Error())), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("DeleteProductPost: product %s not found for deletion: %v", productID, err)
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	if err := h.productRepo.Delete(r.Context(), productID); err != nil {
		log.Printf("DeleteProductPost: failed to delete product %s: %v", productID, err)
	}

	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}
