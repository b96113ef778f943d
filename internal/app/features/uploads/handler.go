// internal/app/features/uploads/handler.go
package uploads

import (
	studentstore "github.com/rosterhub/rosterhub/internal/app/store/students"
	teacherstore "github.com/rosterhub/rosterhub/internal/app/store/teachers"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the xlsx roster import endpoints.
type Handler struct {
	Log      *zap.Logger
	ErrLog   *httpapi.ErrorLogger
	Teachers *teacherstore.Store
	Students *studentstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		ErrLog:   httpapi.NewErrorLogger(logger),
		Teachers: teacherstore.New(db),
		Students: studentstore.New(db),
	}
}
