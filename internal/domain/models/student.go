// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is keyed by registration number (reg_no); that string, not the
// ObjectID, is how groups reference their members.
//
// Marks is a single scalar. Setting it replaces the previous value; there is
// no history.
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegNo        string             `bson:"reg_no" json:"regNo"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"`
	Email        string             `bson:"email" json:"email"`
	OtherDetails map[string]string  `bson:"other_details,omitempty" json:"otherDetails,omitempty"`
	Marks        float64            `bson:"marks" json:"marks"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
