package api

import (
	"fmt"
	"strings"

	"bridges/internal/api/controllers"
	"bridges/internal/web"
	"bridges/pkg/middleware"
	"bridges/pkg/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const LoginPath = "/login"

type RouterConfig struct {
	CookieName string
	JWTSecret  []byte
	StaticDir  string
	// Uploads are served from UploadDir at UploadMount unless the mount
	// already lies under /static.
	UploadDir   string
	UploadMount string
}

type RouterParams struct {
	fx.In

	Config RouterConfig
	Log    *zap.Logger

	Seeder        middleware.Seeder
	SessionReader middleware.SessionReader

	Pages   *controllers.PagesController
	Account *controllers.AccountController
	Editor  *controllers.EditorController
	Catalog *controllers.CatalogController
	Bridges *controllers.BridgesController
	Health  *controllers.HealthController
}

func NewRouter(p RouterParams) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))

	r.GET("/healthz", p.Health.Health)
	r.Static("/static", p.Config.StaticDir)
	if mount := p.Config.UploadMount; mount != "" && !strings.HasPrefix(mount, "/static/") {
		r.Static(mount, p.Config.UploadDir)
	}

	app := r.Group("/")
	app.Use(middleware.EnsureSeeded(p.Seeder))
	app.Use(middleware.LoadSession(p.Config.CookieName, p.SessionReader))

	RegisterRoutes(app, p)

	return r, nil
}

func RegisterRoutes(r *gin.RouterGroup, p RouterParams) {
	r.GET("/", p.Pages.Home)
	r.GET("/search", p.Pages.Search)
	r.GET("/bridge/:id", p.Pages.BridgeDetail)

	r.GET(LoginPath, p.Account.LoginForm)
	r.POST(LoginPath, p.Account.Login)
	r.GET("/logout", p.Account.Logout)

	editorGroup := r.Group("/editor")
	editorGroup.Use(middleware.RequireEditor(LoginPath))
	editorGroup.GET("/add-bridge", p.Editor.AddBridgeForm)
	editorGroup.POST("/add-bridge", p.Editor.AddBridge)

	apiGroup := r.Group("/api")
	apiGroup.GET("/countries", p.Catalog.ListCountries)
	apiGroup.GET("/states", p.Catalog.ListStates)
	apiGroup.GET("/districts", p.Catalog.ListDistricts)
	apiGroup.GET("/bridges", p.Catalog.ListBridges)
	apiGroup.GET("/bridges/:id", p.Bridges.GetBridge)
	apiGroup.GET("/search", p.Bridges.Search)
	apiGroup.POST("/auth/token", p.Account.IssueToken)
	apiGroup.POST("/bridges",
		middleware.BearerAuth(p.Config.JWTSecret),
		middleware.RequireRole(session.RoleEditor),
		p.Bridges.CreateBridge)
}
