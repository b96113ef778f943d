// internal/domain/models/groupmembership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupMembership is the authoritative join between students and groups.
// The unique index on reg_no means a registration number can appear in at
// most one document system-wide, which is what makes "a student belongs to
// at most one group" a store-enforced invariant rather than a
// read-then-write check.
type GroupMembership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID   primitive.ObjectID `bson:"group_id" json:"groupId"`
	RegNo     string             `bson:"reg_no" json:"regNo"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
