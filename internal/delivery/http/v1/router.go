package v1

import (
	"html/template"
	"net/http"

	"go-portfolio-site/config"
	"go-portfolio-site/internal/delivery/http/middleware"
	"go-portfolio-site/internal/delivery/http/response"
	"go-portfolio-site/internal/domain"
	"go-portfolio-site/pkg/dates"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ResumeUC  domain.ResumeUsecase
	Config    *config.Config
	// TemplateGlob and StaticDir allow tests to point at fixtures; empty
	// values skip page-rendering setup so API tests need no templates.
	TemplateGlob string
	StaticDir    string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())

	// Pages
	if deps.TemplateGlob != "" {
		r.SetFuncMap(template.FuncMap{
			"date":      dates.FormatDate,
			"dateRange": dates.FormatDateRange,
		})
		r.LoadHTMLGlob(deps.TemplateGlob)
		NewPagesHandler(r, deps.ResumeUC)
	}
	if deps.StaticDir != "" {
		r.Static("/static", deps.StaticDir)
	}

	// JSON API
	api := r.Group("/api")
	api.Use(middleware.ErrorHandler())

	api.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "System operational", nil)
	})

	NewContactHandler(api, deps.ContactUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
