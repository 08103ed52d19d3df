package admin

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
	"github.com/yilmazatalay/go-catalog/app/helpers"
	"github.com/yilmazatalay/go-catalog/app/models"
	"github.com/yilmazatalay/go-catalog/app/models/other"
	"github.com/yilmazatalay/go-catalog/app/repositories"
	"github.com/yilmazatalay/go-catalog/app/utils/breadcrumb"
)

type AdminHandler struct {
	render           *render.Render
	validator        *validator.Validate
	userRepo         repositories.UserRepositoryImpl
	categoryRepo     repositories.CategoryRepositoryImpl
	productRepo      repositories.ProductRepositoryImpl
	featureRepo      repositories.FeatureRepositoryImpl
	featureValueRepo repositories.FeatureValueRepositoryImpl
	assignmentRepo   repositories.ProductFeatureRepositoryImpl
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	userRepo repositories.UserRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	featureRepo repositories.FeatureRepositoryImpl,
	featureValueRepo repositories.FeatureValueRepositoryImpl,
	assignmentRepo repositories.ProductFeatureRepositoryImpl,
) *AdminHandler {
	return &AdminHandler{
		render:           render,
		validator:        validator,
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		productRepo:      productRepo,
		featureRepo:      featureRepo,
		featureValueRepo: featureValueRepo,
		assignmentRepo:   assignmentRepo,
	}
}

type AdminPageData struct {
	other.BasePageData
	TotalUsers       int
	TotalCategories  int
	TotalProducts    int
	TotalFeatures    int
	TotalAssignments int
}

// CategoryRow pairs a category with its resolved ancestor path for the
// list screen.
type CategoryRow struct {
	models.Category
	Path string
}

type AdminCategoryPageData struct {
	other.BasePageData
	Categories    []CategoryRow
	CategoryData  *CategoryForm
	IsEdit        bool
	FormAction    string
	Errors        map[string]string
	ParentOptions []models.Category
	ListConfig    ListConfig
}

type CategoryForm struct {
	ID       string `form:"id"`
	Name     string `form:"name" validate:"required,min=2,max=128"`
	IsActive bool   `form:"is_active"`
	ParentID string `form:"parent_id"`
}

type AdminProductPageData struct {
	other.BasePageData
	Products    []models.Product
	ProductData *ProductForm
	IsEdit      bool
	FormAction  string
	Errors      map[string]string
	ListConfig  ListConfig
}

type ProductForm struct {
	ID          string `form:"id"`
	Name        string `form:"name" validate:"required,min=2,max=128"`
	Description string `form:"description" validate:"required"`
	Stock       string `form:"stock" validate:"omitempty,numeric"`
	Price       string `form:"price" validate:"required"`
	Slug        string
}

type AdminFeaturePageData struct {
	other.BasePageData
	Features    []models.Feature
	FeatureData *FeatureForm
	IsEdit      bool
	FormAction  string
	Errors      map[string]string
	ListConfig  ListConfig
}

type FeatureForm struct {
	ID        string `form:"id"`
	Name      string `form:"name" validate:"required,min=2,max=100"`
	InputType string `form:"input_type" validate:"required,oneof=select number text"`
	Unit      string `form:"unit" validate:"max=20"`
}

type AdminFeatureValuePageData struct {
	other.BasePageData
	Values     []models.FeatureValue
	ValueData  *FeatureValueForm
	Features   []models.Feature
	IsEdit     bool
	FormAction string
	Errors     map[string]string
	ListConfig ListConfig
}

type FeatureValueForm struct {
	ID        string `form:"id"`
	FeatureID string `form:"feature_id" validate:"required"`
	Value     string `form:"value" validate:"required,max=100"`
}

// AssignmentRow pairs an assignment with its rendered value for the
// list screen.
type AssignmentRow struct {
	models.ProductFeature
	Display string
}

type AdminProductFeaturePageData struct {
	other.BasePageData
	Assignments    []AssignmentRow
	AssignmentData *ProductFeatureForm
	Products       []models.Product
	Features       []models.Feature
	IsEdit         bool
	FormAction     string
	Errors         map[string]string
	ListConfig     ListConfig
}

type ProductFeatureForm struct {
	ID              string `form:"id"`
	ProductID       string `form:"product_id" validate:"required"`
	FeatureID       string `form:"feature_id" validate:"required"`
	ValueSelectedID string `form:"value_selected_id"`
	ValueCustom     string `form:"value_custom" validate:"max=255"`
}

type AdminUserPageData struct {
	other.BasePageData
	Users      []models.User
	UserData   *UserForm
	IsEdit     bool
	FormAction string
	Errors     map[string]string
	ListConfig ListConfig
}

type UserForm struct {
	ID       string `form:"id"`
	Username string `form:"username" validate:"required,min=3,max=150"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password"`
	IsStaff  bool   `form:"is_staff"`
	Bio      string `form:"bio"`
}

func (h *AdminHandler) populateBaseDataForAdmin(r *http.Request, pageData interface{}) {
	baseDataMap := helpers.GetBaseData(r, nil)

	var base *other.BasePageData
	switch pd := pageData.(type) {
	case *AdminPageData:
		base = &pd.BasePageData
	case *AdminCategoryPageData:
		base = &pd.BasePageData
	case *AdminProductPageData:
		base = &pd.BasePageData
	case *AdminFeaturePageData:
		base = &pd.BasePageData
	case *AdminFeatureValuePageData:
		base = &pd.BasePageData
	case *AdminProductFeaturePageData:
		base = &pd.BasePageData
	case *AdminUserPageData:
		base = &pd.BasePageData
	default:
		log.Printf("populateBaseDataForAdmin: Unknown pageData type: %T", pageData)
		return
	}

	if isLoggedIn, ok := baseDataMap["IsLoggedIn"].(bool); ok {
		base.IsLoggedIn = isLoggedIn
	}
	if user, ok := baseDataMap["User"].(*other.UserForTemplate); ok {
		base.User = user
	}
	if userID, ok := baseDataMap["UserID"].(string); ok {
		base.UserID = userID
	}
	if message, ok := baseDataMap["Message"].(string); ok {
		base.Message = message
	}
	if messageStatus, ok := baseDataMap["MessageStatus"].(string); ok {
		base.MessageStatus = messageStatus
	}
	if query, ok := baseDataMap["Query"].(url.Values); ok {
		base.Query = query
	}
	base.CSRFToken = csrf.Token(r)
	base.IsAdminPage = true
	base.CurrentPath = r.URL.Path
	base.IsAdminRoute = strings.HasPrefix(r.URL.Path, "/admin/")
}

func (h *AdminHandler) GetDashboardPage(w http.ResponseWriter, r *http.Request) {
	data := &AdminPageData{}
	h.populateBaseDataForAdmin(r, data)

	data.Title = "Dashboard"
	data.Breadcrumbs = []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
	}

	if users, err := h.userRepo.GetAll(r.Context()); err == nil {
		data.TotalUsers = len(users)
	} else {
		log.Printf("GetDashboardPage: failed to count users: %v", err)
	}
	if categories, err := h.categoryRepo.GetAll(r.Context()); err == nil {
		data.TotalCategories = len(categories)
	} else {
		log.Printf("GetDashboardPage: failed to count categories: %v", err)
	}
	if _, total, err := h.productRepo.GetPaginated(r.Context(), 1, 0); err == nil {
		data.TotalProducts = int(total)
	} else {
		log.Printf("GetDashboardPage: failed to count products: %v", err)
	}
	if features, err := h.featureRepo.GetAll(r.Context()); err == nil {
		data.TotalFeatures = len(features)
	} else {
		log.Printf("GetDashboardPage: failed to count features: %v", err)
	}
	if assignments, err := h.assignmentRepo.GetAll(r.Context()); err == nil {
		data.TotalAssignments = len(assignments)
	} else {
		log.Printf("GetDashboardPage: failed to count assignments: %v", err)
	}

	h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
