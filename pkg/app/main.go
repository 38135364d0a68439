package app

import (
	"github.com/ghuser/foodkeeper/pkg/cache"
	"github.com/ghuser/foodkeeper/pkg/config"
	"github.com/ghuser/foodkeeper/pkg/database"
	"github.com/ghuser/foodkeeper/pkg/events"
	"github.com/ghuser/foodkeeper/pkg/logger"
	"github.com/ghuser/foodkeeper/pkg/workflows"
	"github.com/gorilla/sessions"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler â€” use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing product", "product_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // Redis-backed session store; nil in worker process
}
