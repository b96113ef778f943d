// internal/domain/models/teacher.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Teacher is an authenticated portal user. Teachers are provisioned by the
// roster upload, never through the sign-in flow; Google sign-in only binds
// to an existing document by email.
type Teacher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeacherID string             `bson:"teacher_id" json:"teacherId"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"`
	Email     string             `bson:"email" json:"email"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
