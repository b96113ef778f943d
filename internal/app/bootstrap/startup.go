// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	teacherstore "github.com/rosterhub/rosterhub/internal/app/store/teachers"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// An empty teachers collection means nobody can sign in; worth a
	// loud note in the log rather than a silent wall of 403s later.
	n, err := teacherstore.New(deps.MongoDatabase).Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Warn("no teachers provisioned; upload a teacher roster before anyone can sign in")
	} else {
		logger.Info("teacher roster present", zap.Int64("teachers", n))
	}
	return nil
}
