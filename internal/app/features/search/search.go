// internal/app/features/search/search.go
package search

import (
	"context"
	"net/http"

	"github.com/rosterhub/rosterhub/internal/app/system/auth"
	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/normalize"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// studentResultLimit caps the student half of the response. Group results
// are scoped to the session teacher and stay uncapped.
const studentResultLimit = 10

type searchResponse struct {
	Groups   []models.Group   `json:"groups"`
	Students []models.Student `json:"students"`
}

// HandleSearch handles GET /search?q=. Groups match on title or subtitle
// within the teacher's own groups; students match on name or regNo across
// the whole roster. A blank query returns empty lists without touching
// the database.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	teacherID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		httpapi.Unauthorized(w, "Not authenticated")
		return
	}

	q := normalize.QueryParam(r.URL.Query().Get("q"))
	if q == "" {
		httpapi.WriteJSON(w, http.StatusOK, searchResponse{
			Groups:   []models.Group{},
			Students: []models.Student{},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Groups.SearchByTeacher(ctx, teacherID, q)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group search failed", err, "Search failed")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	regsByGroup, err := h.Memberships.RegsByGroups(ctx, ids)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load rosters failed", err, "Search failed")
		return
	}
	for i := range groups {
		groups[i].StudentRegs = regsByGroup[groups[i].ID]
		if groups[i].StudentRegs == nil {
			groups[i].StudentRegs = []string{}
		}
	}

	students, err := h.Students.Search(ctx, q, studentResultLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "student search failed", err, "Search failed")
		return
	}

	if groups == nil {
		groups = []models.Group{}
	}
	if students == nil {
		students = []models.Student{}
	}

	httpapi.WriteJSON(w, http.StatusOK, searchResponse{
		Groups:   groups,
		Students: students,
	})
}
