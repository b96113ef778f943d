// internal/app/features/groups/detail.go
package groups

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhub/rosterhub/internal/app/store/queries/grouproster"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// groupDetailResponse pairs the group with its full member records.
type groupDetailResponse struct {
	Group    models.Group     `json:"group"`
	Students []models.Student `json:"students"`
}

// groupID extracts and validates the {id} URL parameter. A malformed id
// gets the same answer as an unknown one.
func groupID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpapi.NotFound(w, "Group not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// HandleDetail handles GET /groups/{id}: the group plus full student
// records for its roster, in join order. An empty roster is an empty list,
// not an error.
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	group, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpapi.NotFound(w, "Group not found")
			return
		}
		h.ErrLog.LogServerError(w, r, "load group failed", err, "Could not load group")
		return
	}

	students, err := grouproster.ListGroupStudents(ctx, h.DB, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "Could not load group")
		return
	}
	if students == nil {
		students = []models.Student{}
	}

	group.StudentRegs = make([]string, 0, len(students))
	for _, s := range students {
		group.StudentRegs = append(group.StudentRegs, s.RegNo)
	}

	httpapi.WriteJSON(w, http.StatusOK, groupDetailResponse{
		Group:    group,
		Students: students,
	})
}
