// internal/app/features/groups/delete.go
package groups

import (
	"context"
	"net/http"

	"github.com/rosterhub/rosterhub/internal/app/system/httpapi"
	"github.com/rosterhub/rosterhub/internal/app/system/timeouts"
	"github.com/rosterhub/rosterhub/internal/app/system/txn"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /groups/{id}. The group document and its
// membership rows go together: leaving memberships behind would keep
// former members locked out of every other group. Student records are
// untouched; their marks survive the group.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var deleted int64
	err := txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		n, err := h.Groups.Delete(ctx, id)
		if err != nil {
			return err
		}
		deleted = n
		if n == 0 {
			return nil
		}
		_, err = h.Memberships.DeleteByGroup(ctx, id)
		return err
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete group failed", err, "Could not delete group")
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "Group not found")
		return
	}

	h.Log.Info("group deleted", zap.String("group_id", id.Hex()))
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
