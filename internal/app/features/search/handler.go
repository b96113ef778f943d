// internal/app/features/search/handler.go
package search

import (
	groupstore "github.com/rosterhub/rosterhub/internal/app/store/groups"
	membershipstore "github.com/rosterhub/rosterhub/internal/app/store/memberships"
	studentstore "github.com/rosterhub/rosterhub/internal/app/store/students"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the combined search endpoint.
type Handler struct {
	Log         *zap.Logger
	ErrLog      *httpapi.ErrorLogger
	Groups      *groupstore.Store
	Students    *studentstore.Store
	Memberships *membershipstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:         logger,
		ErrLog:      httpapi.NewErrorLogger(logger),
		Groups:      groupstore.New(db),
		Students:    studentstore.New(db),
		Memberships: membershipstore.New(db),
	}
}
