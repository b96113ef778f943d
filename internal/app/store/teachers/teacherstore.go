// internal/app/store/teachers/teacherstore.go
package teacherstore

import (
	"context"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teachers")}
}

// GetByEmail looks up a teacher by their login email. The email must
// already be normalized (lower-cased, trimmed). Returns
// mongo.ErrNoDocuments when no teacher with that email exists, which the
// sign-in flow treats as "not allowed in".
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Teacher, error) {
	var t models.Teacher
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&t); err != nil {
		return models.Teacher{}, err
	}
	return t, nil
}

// Upsert inserts or updates a teacher keyed by email. Spreadsheet imports
// call this once per row, so re-uploading a roster refreshes names and
// teacher IDs without duplicating records.
func (s *Store) Upsert(ctx context.Context, t models.Teacher) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"teacher_id": t.TeacherID,
			"name":       t.Name,
			"name_ci":    text.Fold(t.Name),
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"email":      t.Email,
			"created_at": now,
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"email": t.Email}, update, options.Update().SetUpsert(true))
	if err != nil && wafflemongo.IsDup(err) {
		// Concurrent upsert raced us on the unique email index; the
		// other writer already created the record.
		return nil
	}
	return err
}

// Count returns the number of teacher records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
