package routes

import (
	"encoding/base64"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/yilmazatalay/go-catalog/app/configs"
	"github.com/yilmazatalay/go-catalog/app/handlers"
	adminhandlers "github.com/yilmazatalay/go-catalog/app/handlers/admin"
	"github.com/yilmazatalay/go-catalog/app/middlewares"
	"github.com/yilmazatalay/go-catalog/app/repositories"
	"github.com/yilmazatalay/go-catalog/app/utils/renderer"
	"github.com/yilmazatalay/go-catalog/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) http.Handler {
	render := renderer.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	featureRepo := repositories.NewFeatureRepository(db)
	featureValueRepo := repositories.NewFeatureValueRepository(db)
	assignmentRepo := repositories.NewProductFeatureRepository(db)

	sessionKeys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("NewRouter: failed to load session keys: %v", err)
	}
	sessionStore := sessions.NewCookieSessionStore(sessionKeys.AuthKey, sessionKeys.EncKey)

	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore)
	homeHandler := handlers.NewHomeHandler(render)
	adminHandler := adminhandlers.NewAdminHandler(
		render, validate,
		userRepo, categoryRepo, productRepo,
		featureRepo, featureValueRepo, assignmentRepo,
	)

	router := mux.NewRouter()
	router.Use(middlewares.MethodOverrideMiddleware)
	router.Use(middlewares.CurrentUserMiddleware(sessionStore, userRepo))

	router.HandleFunc("/", homeHandler.Home).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	router.HandleFunc("/login", authHandler.LoginPost).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(userRepo))

	adminRouter.HandleFunc("/dashboard", adminHandler.GetDashboardPage).Methods("GET")

	adminRouter.HandleFunc("/users", adminHandler.GetUsersPage).Methods("GET")
	adminRouter.HandleFunc("/users/add", adminHandler.AddUserPage).Methods("GET")
	adminRouter.HandleFunc("/users/add", adminHandler.AddUserPost).Methods("POST")
	adminRouter.HandleFunc("/users/edit/{id}", adminHandler.EditUserPage).Methods("GET")
	adminRouter.HandleFunc("/users/edit/{id}", adminHandler.EditUserPost).Methods("POST")
	adminRouter.HandleFunc("/users/delete/{id}", adminHandler.DeleteUserPost).Methods("POST")

	adminRouter.HandleFunc("/categories", adminHandler.GetCategoriesPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/edit/{id}", adminHandler.EditCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/edit/{id}", adminHandler.EditCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/delete/{id}", adminHandler.DeleteCategoryPost).Methods("POST")

	adminRouter.HandleFunc("/products", adminHandler.GetProductsPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/edit/{id}", adminHandler.EditProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/edit/{id}", adminHandler.EditProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/delete/{id}", adminHandler.DeleteProductPost).Methods("POST")

	adminRouter.HandleFunc("/features", adminHandler.GetFeaturesPage).Methods("GET")
	adminRouter.HandleFunc("/features/add", adminHandler.AddFeaturePage).Methods("GET")
	adminRouter.HandleFunc("/features/add", adminHandler.AddFeaturePost).Methods("POST")
	adminRouter.HandleFunc("/features/edit/{id}", adminHandler.EditFeaturePage).Methods("GET")
	adminRouter.HandleFunc("/features/edit/{id}", adminHandler.EditFeaturePost).Methods("POST")
	adminRouter.HandleFunc("/features/delete/{id}", adminHandler.DeleteFeaturePost).Methods("POST")

	adminRouter.HandleFunc("/feature-values", adminHandler.GetFeatureValuesPage).Methods("GET")
	adminRouter.HandleFunc("/feature-values/add", adminHandler.AddFeatureValuePage).Methods("GET")
	adminRouter.HandleFunc("/feature-values/add", adminHandler.AddFeatureValuePost).Methods("POST")
	adminRouter.HandleFunc("/feature-values/edit/{id}", adminHandler.EditFeatureValuePage).Methods("GET")
	adminRouter.HandleFunc("/feature-values/edit/{id}", adminHandler.EditFeatureValuePost).Methods("POST")
	adminRouter.HandleFunc("/feature-values/delete/{id}", adminHandler.DeleteFeatureValuePost).Methods("POST")

	adminRouter.HandleFunc("/product-features", adminHandler.GetProductFeaturesPage).Methods("GET")
	adminRouter.HandleFunc("/product-features/add", adminHandler.AddProductFeaturePage).Methods("GET")
	adminRouter.HandleFunc("/product-features/add", adminHandler.AddProductFeaturePost).Methods("POST")
	adminRouter.HandleFunc("/product-features/edit/{id}", adminHandler.EditProductFeaturePage).Methods("GET")
	adminRouter.HandleFunc("/product-features/edit/{id}", adminHandler.EditProductFeaturePost).Methods("POST")
	adminRouter.HandleFunc("/product-features/delete/{id}", adminHandler.DeleteProductFeaturePost).Methods("POST")

	csrfKey, err := base64.URLEncoding.DecodeString(configs.LoadENV.CSRFKey)
	if err != nil || len(csrfKey) != 32 {
		log.Fatalf("NewRouter: APP_CSRF_KEY must be 32 base64-encoded bytes")
	}
	csrfMiddleware := csrf.Protect(csrfKey, csrf.Secure(configs.LoadENV.AppEnv == "production"))

	return csrfMiddleware(router)
}
