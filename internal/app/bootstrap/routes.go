// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	authgooglefeature "github.com/rosterhub/rosterhub/internal/app/features/authgoogle"
	groupsfeature "github.com/rosterhub/rosterhub/internal/app/features/groups"
	healthfeature "github.com/rosterhub/rosterhub/internal/app/features/health"
	logoutfeature "github.com/rosterhub/rosterhub/internal/app/features/logout"
	mefeature "github.com/rosterhub/rosterhub/internal/app/features/me"
	searchfeature "github.com/rosterhub/rosterhub/internal/app/features/search"
	studentsfeature "github.com/rosterhub/rosterhub/internal/app/features/students"
	uploadsfeature "github.com/rosterhub/rosterhub/internal/app/features/uploads"
	"github.com/rosterhub/rosterhub/internal/app/store/oauthstate"
	teacherstore "github.com/rosterhub/rosterhub/internal/app/store/teachers"
	"github.com/rosterhub/rosterhub/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. RosterHub is a JSON API for a separate
// SPA frontend, so there is no template engine or static file serving here;
// every route group except /health and /auth/google sits behind the
// session middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	googleHandler := authgooglefeature.NewHandler(
		sessionMgr,
		teacherstore.New(deps.MongoDatabase),
		oauthstate.New(deps.MongoDatabase),
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.BaseURL,
		appCfg.FrontendURL,
		logger,
	)
	if !googleHandler.IsConfigured() {
		logger.Warn("Google OAuth not configured; sign-in is unavailable")
	}
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/auth/logout", logoutfeature.Routes(logoutHandler))

	meHandler := mefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/auth/me", mefeature.Routes(meHandler))

	// Group management
	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler, sessionMgr))

	// Student marks and membership lookup
	studentsHandler := studentsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler, sessionMgr))

	// Combined group/student search
	searchHandler := searchfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/search", searchfeature.Routes(searchHandler, sessionMgr))

	// Roster imports
	uploadsHandler := uploadsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/upload", uploadsfeature.Routes(uploadsHandler, sessionMgr))

	return r, nil
}
