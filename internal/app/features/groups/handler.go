// internal/app/features/groups/handler.go
package groups

import (
	groupstore "github.com/rosterhub/rosterhub/internal/app/store/groups"
	membershipstore "github.com/rosterhub/rosterhub/internal/app/store/memberships"
	studentstore "github.com/rosterhub/rosterhub/internal/app/store/students"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature.
// It holds the stores and logger so the per-operation handlers (list,
// create, roster mutation, marks) share the same core dependencies.
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	ErrLog      *httpapi.ErrorLogger
	Groups      *groupstore.Store
	Students    *studentstore.Store
	Memberships *membershipstore.Store
}

// NewHandler constructs a groups Handler. It is typically called from the
// bootstrap BuildHandler function, where the application's DB and logger
// are already initialized.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ErrLog:      httpapi.NewErrorLogger(logger),
		Groups:      groupstore.New(db),
		Students:    studentstore.New(db),
		Memberships: membershipstore.New(db),
	}
}
