package routes

import (
	"fpempleo_backend/internal/handlers"
	"fpempleo_backend/internal/middleware"
	"fpempleo_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Register mounts the full API under /api/v1.
func Register(r *gin.Engine, h *handlers.AppHandlers) {
	api := r.Group("/api/v1")

	// Public
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/verify-email", h.Auth.VerifyEmail)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/request-password-reset", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	api.GET("/jobs", h.Job.Search)
	api.GET("/jobs/:id", h.Job.Get)
	api.GET("/taxonomy/families", h.Taxonomy.ListFamilies)
	api.GET("/taxonomy/cycles", h.Taxonomy.ListCycles)
	api.GET("/taxonomy/centers", h.Taxonomy.ListCenters)

	// Authenticated
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.PUT("/auth/password", h.Auth.ChangePassword)

		totp := authed.Group("/auth/totp")
		{
			totp.POST("/enroll", h.Auth.EnrollTOTP)
			totp.POST("/confirm", h.Auth.ConfirmTOTP)
			totp.POST("/disable", h.Auth.DisableTOTP)
		}

		me := authed.Group("/me")
		{
			me.GET("", h.Profile.GetMe)
			me.DELETE("", h.Profile.EraseMe)
			me.PUT("/privacy", h.Profile.UpdatePrivacy)
			me.PUT("/alumnus-profile", middleware.RequireRoles(models.UserRoleAlumnus), h.Profile.UpdateAlumnusProfile)
			me.PUT("/company-profile", middleware.RequireRoles(models.UserRoleCompany), h.Profile.UpdateCompanyProfile)
			me.GET("/cv", middleware.RequireRoles(models.UserRoleAlumnus), h.Profile.GetCV)
			me.PUT("/cv", middleware.RequireRoles(models.UserRoleAlumnus), h.Profile.UpdateCV)
			me.GET("/applications", middleware.RequireRoles(models.UserRoleAlumnus), h.Application.MyApplications)
			me.GET("/jobs", middleware.RequireRoles(models.UserRoleCompany), h.Job.MyJobs)
		}

		// Directories require a signed-in account; profiles in them have
		// opted into visibility.
		authed.GET("/alumni", h.Profile.ListAlumni)
		authed.GET("/companies", h.Profile.ListCompanies)
		authed.GET("/profiles/:id", h.Profile.GetPublicProfile)

		jobs := authed.Group("/jobs")
		{
			jobs.POST("", middleware.RequireRoles(models.UserRoleCompany), h.Job.Create)
			jobs.PUT("/:id", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.Job.Update)
			jobs.PUT("/:id/expiry", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.Job.ExtendExpiry)
			jobs.PUT("/:id/active", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.Job.SetActive)
			jobs.DELETE("/:id", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.Job.Delete)

			jobs.POST("/:id/applications", middleware.RequireRoles(models.UserRoleAlumnus), h.Application.Submit)
			jobs.GET("/:id/applications", middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin), h.Application.ListForJob)
		}

		authed.PUT("/applications/:id/status",
			middleware.RequireRoles(models.UserRoleCompany, models.UserRoleAdmin),
			h.Application.SetStatus,
		)

		admin := authed.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/users", h.Admin.ListUsers)
			admin.DELETE("/users/:id", h.Admin.EraseUser)
			admin.GET("/jobs", h.Admin.ListJobs)
			admin.GET("/stats", h.Admin.Stats)
			admin.GET("/smtp-settings", h.Admin.GetSMTPSettings)
			admin.PUT("/smtp-settings", h.Admin.UpdateSMTPSettings)

			admin.POST("/taxonomy/families", h.Admin.CreateFamily)
			admin.DELETE("/taxonomy/families/:id", h.Admin.DeleteFamily)
			admin.POST("/taxonomy/cycles", h.Admin.CreateCycle)
			admin.DELETE("/taxonomy/cycles/:id", h.Admin.DeleteCycle)
			admin.POST("/taxonomy/centers", h.Admin.CreateCenter)
			admin.DELETE("/taxonomy/centers/:id", h.Admin.DeleteCenter)
		}
	}
}
