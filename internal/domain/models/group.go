// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a teacher-owned roster container.
//
// NOTE:
//   - The member list is no longer embedded on Group. Membership is stored
//     in the group_memberships collection, one document per rostered
//     student, with a unique index on reg_no. StudentRegs is hydrated at
//     read time, in membership insertion order.
//   - TeacherID is immutable after creation; it scopes listing and search.
type Group struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title"`
	TitleCI  string             `bson:"title_ci" json:"-"`
	Subtitle string             `bson:"subtitle" json:"subtitle"`
	Banner   string             `bson:"banner" json:"banner"`

	TeacherID primitive.ObjectID `bson:"teacher_id" json:"teacherId"`

	// Aggregate mark, entered manually; nil until first set. It is not
	// derived from member marks and is never recomputed.
	GroupMarks          *float64   `bson:"group_marks" json:"groupMarks"`
	GroupMarksUpdatedAt *time.Time `bson:"group_marks_updated_at,omitempty" json:"groupMarksUpdatedAt,omitempty"`

	StudentRegs []string `bson:"-" json:"studentRegs"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
