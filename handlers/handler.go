package handlers

import (
	"github.com/happywht/gg-mange/server"
	"github.com/happywht/gg-mange/services/access"
	"github.com/happywht/gg-mange/services/auth"
	"github.com/happywht/gg-mange/services/logging"
	"github.com/happywht/gg-mange/services/siteconfig"
	"github.com/happywht/gg-mange/services/totp"
	"github.com/happywht/gg-mange/session"
	"github.com/happywht/gg-mange/vault"
	"go.uber.org/fx"
)

const loginPage = "/login.html"

type Handler struct {
	store    vault.Store
	engine   *totp.Engine
	gate     *access.Gate
	site     *siteconfig.Service
	authSvc  *auth.Service
	guard    *session.Guard
	sessions session.Service
	logger   *logging.Service
}

func New(
	store vault.Store,
	engine *totp.Engine,
	gate *access.Gate,
	site *siteconfig.Service,
	authSvc *auth.Service,
	guard *session.Guard,
	sessions session.Service,
	logger *logging.Service,
) *Handler {
	return &Handler{
		store:    store,
		engine:   engine,
		gate:     gate,
		site:     site,
		authSvc:  authSvc,
		guard:    guard,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(srv *server.Server, manager *session.Manager) {
	srv.Use(logging.RequestLogger(h.logger))
	srv.Use(session.Middleware(manager))

	api := srv.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/config", h.GetSiteConfig)

	api.GET("/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.PUT("/accounts/:id", h.UpdateAccount)
	api.DELETE("/accounts/:id", h.DeleteAccount)
	api.GET("/accounts/:id/password", h.GetAccountPassword)
	api.GET("/accounts/:id/totp", h.GetAccountTOTP)

	api.GET("/announcement", h.GetAnnouncement)
	api.POST("/announcement", h.PublishAnnouncement, h.RequireAdminPassword)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.SignUp)
	authGroup.POST("/signin", h.SignIn)
	authGroup.POST("/logout", h.SignOut)
	authGroup.GET("/session", h.GetSession, h.guard.RequireAuth(loginPage))

	admin := api.Group("/admin")
	admin.GET("/accounts", h.AdminListAccounts)
	admin.POST("/accounts", h.CreateAccount)
	admin.PUT("/accounts/:id", h.UpdateAccount)
	admin.DELETE("/accounts/:id", h.DeleteAccount)
	admin.GET("/database", h.AdminDatabaseDump)

	admin.GET("/buttons", h.GetButtons)
	admin.PUT("/buttons", h.UpdateButton, h.RequireAdminPassword)
	admin.GET("/config", h.AdminGetSiteConfig)
	admin.PUT("/config", h.UpdateContact, h.RequireAdminPassword)

	admin.GET("/announcement", h.AdminGetAnnouncement)
	admin.POST("/announcement", h.AdminPublishAnnouncement, h.RequireAdminPassword)
	admin.DELETE("/announcement", h.DeleteAnnouncements, h.RequireAdminPassword)
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(h *Handler, srv *server.Server, manager *session.Manager) {
		h.RegisterRoutes(srv, manager)
	}),
)
