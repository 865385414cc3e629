package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/services"
	"github.com/SAP-F-2025/course-catalog-service/internal/session"
	"github.com/SAP-F-2025/course-catalog-service/internal/utils"
	"github.com/SAP-F-2025/course-catalog-service/internal/validator"
)

type HandlerManager struct {
	serviceManager   services.ServiceManager
	catalogHandler   *CatalogHandler
	listingHandler   *ListingHandler
	authHandler      *AuthHandler
	dashboardHandler *DashboardHandler
	learningHandler  *LearningHandler
	settingsHandler  *SettingsHandler
	adminHandler     *AdminHandler
	authMiddleware   *SessionAuthMiddleware
}

// NewHandlerManager builds every handler. The service manager must already
// be initialized.
func NewHandlerManager(
	serviceManager services.ServiceManager,
	sessions *session.Manager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		serviceManager:   serviceManager,
		catalogHandler:   NewCatalogHandler(serviceManager.Catalog(), serviceManager.Listing(), logger),
		listingHandler:   NewListingHandler(serviceManager.Listing(), validator, logger),
		authHandler:      NewAuthHandler(serviceManager.Form(), logger),
		dashboardHandler: NewDashboardHandler(serviceManager.Dashboard(), serviceManager.Notification(), logger),
		learningHandler:  NewLearningHandler(serviceManager.Learning(), serviceManager.CourseAction(), logger),
		settingsHandler:  NewSettingsHandler(serviceManager.Account(), serviceManager.Billing(), serviceManager.Preference(), logger),
		adminHandler:     NewAdminHandler(serviceManager.Admin(), logger),
		authMiddleware:   NewSessionAuthMiddleware(sessions),
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	v1 := router.Group("/api/v1")

	// Public routes
	public := v1.Group("")
	public.Use(hm.authMiddleware.OptionalAuthMiddleware())
	{
		courses := public.Group("/courses")
		{
			courses.GET("", hm.catalogHandler.ListCourses)
			courses.GET("/search", hm.catalogHandler.SearchCourses)
			courses.GET("/featured", hm.catalogHandler.FeaturedCourses)
			courses.GET("/popular", hm.catalogHandler.PopularCourses)
			courses.GET("/new", hm.catalogHandler.NewCourses)
			courses.GET("/slug/:slug", hm.catalogHandler.GetCourseBySlug)
			courses.GET("/:id", hm.catalogHandler.GetCourse)
		}

		categories := public.Group("/categories")
		{
			categories.GET("", hm.catalogHandler.ListCategories)
			categories.GET("/:slug/courses", hm.catalogHandler.GetCategoryCourses)
		}

		public.POST("/auth/login", hm.authHandler.Login)
		public.POST("/auth/instructors/register", hm.authHandler.RegisterInstructor)
		public.POST("/contact", hm.authHandler.Contact)
		public.GET("/billing/plans", hm.settingsHandler.ListPlans)
	}

	// Session routes
	authed := v1.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		authed.POST("/auth/logout", hm.authHandler.Logout)

		listings := authed.Group("/listings")
		{
			listings.POST("", hm.listingHandler.CreateListing)
			listings.GET("/:id", hm.listingHandler.GetListing)
			listings.PATCH("/:id", hm.listingHandler.UpdateListing)
			listings.PUT("/:id/query", hm.listingHandler.SetQuery)
			listings.POST("/:id/categories/toggle", hm.listingHandler.ToggleCategory)
			listings.POST("/:id/levels/toggle", hm.listingHandler.ToggleLevel)
			listings.PUT("/:id/price", hm.listingHandler.SetPriceRange)
			listings.POST("/:id/clear", hm.listingHandler.ClearFilters)
			listings.DELETE("/:id", hm.listingHandler.DeleteListing)
		}

		authed.GET("/dashboard", hm.dashboardHandler.GetDashboard)
		authed.GET("/notifications", hm.dashboardHandler.GetNotifications)

		// Course detail actions
		authed.POST("/courses/:id/enroll", hm.learningHandler.Enroll)
		authed.POST("/courses/:id/save", hm.learningHandler.ToggleSave)
		authed.POST("/courses/:id/share", hm.learningHandler.Share)

		learn := authed.Group("/learn/:id")
		{
			learn.GET("", hm.learningHandler.GetLearningView)
			learn.PUT("/lessons/:lesson_id", hm.learningHandler.SetLessonCompleted)
			learn.POST("/complete-all", hm.learningHandler.CompleteAll)
		}

		settings := authed.Group("/settings")
		{
			settings.PUT("/account/profile", hm.settingsHandler.UpdateProfile)
			settings.PUT("/account/password", hm.settingsHandler.ChangePassword)
			settings.PUT("/account/avatar", hm.settingsHandler.UpdateAvatar)
			settings.DELETE("/account", hm.settingsHandler.DeleteAccount)

			settings.GET("/appearance", hm.settingsHandler.GetAppearance)
			settings.PUT("/appearance", hm.settingsHandler.UpdateAppearance)
			settings.PATCH("/appearance", hm.settingsHandler.UpdateAppearance)
			settings.DELETE("/appearance", hm.settingsHandler.ResetAppearance)

			billing := settings.Group("/billing")
			{
				billing.PUT("/plan", hm.settingsHandler.ChangePlan)
				billing.PUT("/cycle", hm.settingsHandler.ChangeBillingCycle)
				billing.POST("/payment-methods", hm.settingsHandler.AddPaymentMethod)
				billing.DELETE("/payment-methods/:id", hm.settingsHandler.RemovePaymentMethod)
				billing.PUT("/payment-methods/:id/default", hm.settingsHandler.SetDefaultPaymentMethod)
				billing.DELETE("/subscription", hm.settingsHandler.CancelSubscription)
			}
		}

		// Admin routes
		admin := authed.Group("/admin")
		admin.Use(hm.authMiddleware.RequireAdminMiddleware())
		{
			admin.GET("/users", hm.adminHandler.SearchUsers)
			admin.POST("/users", hm.adminHandler.SaveUser)
			admin.PUT("/users/:id", hm.adminHandler.SaveUser)
			admin.DELETE("/users/:id", hm.adminHandler.DeleteUser())

			admin.GET("/content", hm.adminHandler.SearchContent)
			admin.POST("/content", hm.adminHandler.SaveContent)
			admin.PUT("/content/:id", hm.adminHandler.SaveContent)
			admin.DELETE("/content/:id", hm.adminHandler.DeleteContent())

			admin.POST("/bulk", hm.adminHandler.BulkAction)
			admin.GET("/export", hm.adminHandler.ExportCatalog)
		}
	}
}
