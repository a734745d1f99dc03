package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "expenseboard/internal/config"
	"expenseboard/internal/domain"
	h "expenseboard/internal/http/handlers"
	"expenseboard/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)
	registerValidations()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/password-reset-request", h.PasswordResetRequest)
		auth.POST("/reset-password", h.ResetPassword)

		// Authenticated user resources
		user := api.Group("")
		user.Use(middleware.RequireAuth(h.JWTSecret()))
		{
			user.GET("/expenses/my", h.GetMyExpenses)
			user.GET("/expenses/report", h.GetExpenseReportPDF)
			user.POST("/expenses", h.CreateExpense)
			user.GET("/categories/expense", h.GetExpenseCategories)

			user.GET("/travel/my", h.GetMyTravel)
			user.POST("/travel", h.CreateTravel)

			user.GET("/daily-reports/my", h.GetMyReports)
			user.POST("/daily-reports", h.CreateReport)

			user.GET("/income", h.GetMyIncome)
			user.POST("/income", h.CreateIncome)
			user.GET("/income/export", h.ExportIncomeCSV)

			locations := user.Group("/locations")
			locations.GET("/states", h.GetStates)
			locations.GET("/cities/:state", h.GetCities)
			locations.GET("/locations/:state/:city", h.GetLocations)
		}

		// Admin console
		admin := api.Group("")
		admin.Use(middleware.RequireAuth(h.JWTSecret()), middleware.RequireRoles(domain.RoleAdmin))
		{
			for _, resource := range []string{"expenses", "travel", "daily-reports", "income"} {
				admin.GET("/"+resource+"/all", h.GetAllRecords(resource))
				admin.PUT("/"+resource+"/update-status/:id", h.UpdateRecordStatus(resource))
			}
			admin.GET("/export/:type/:year/:month", h.ExportMonth)
			admin.POST("/archive/:year/:month", h.ArchiveMonth)
		}
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000", "http://127.0.0.1:3000",
			"http://localhost:5173", "http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("travelmode", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTravelMode(fl.Field().String())
			return err == nil
		})
	}
}
