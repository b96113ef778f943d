// internal/app/features/students/handler.go
package students

import (
	groupstore "github.com/rosterhub/rosterhub/internal/app/store/groups"
	membershipstore "github.com/rosterhub/rosterhub/internal/app/store/memberships"
	studentstore "github.com/rosterhub/rosterhub/internal/app/store/students"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the students feature.
type Handler struct {
	Log         *zap.Logger
	ErrLog      *httpapi.ErrorLogger
	Students    *studentstore.Store
	Groups      *groupstore.Store
	Memberships *membershipstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:         logger,
		ErrLog:      httpapi.NewErrorLogger(logger),
		Students:    studentstore.New(db),
		Groups:      groupstore.New(db),
		Memberships: membershipstore.New(db),
	}
}
