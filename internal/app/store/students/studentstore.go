// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"regexp"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// GetByRegNo looks up a student by registration number. Returns
// mongo.ErrNoDocuments when the student does not exist.
func (s *Store) GetByRegNo(ctx context.Context, regNo string) (models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"reg_no": regNo}).Decode(&st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// GetByRegNos fetches all students whose reg numbers appear in regNos.
// The result order is unspecified; callers that need roster order sort by
// membership created_at themselves.
func (s *Store) GetByRegNos(ctx context.Context, regNos []string) ([]models.Student, error) {
	if len(regNos) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"reg_no": bson.M{"$in": regNos}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Student
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts or updates a student keyed by reg_no. Marks are NOT
// touched here: re-importing a roster must never wipe marks a teacher has
// already recorded.
func (s *Store) Upsert(ctx context.Context, st models.Student) error {
	now := time.Now().UTC()
	set := bson.M{
		"name":       st.Name,
		"name_ci":    text.Fold(st.Name),
		"updated_at": now,
	}
	if st.Email != "" {
		set["email"] = st.Email
	}
	if len(st.OtherDetails) > 0 {
		set["other_details"] = st.OtherDetails
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"reg_no":     st.RegNo,
			"marks":      float64(0),
			"created_at": now,
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"reg_no": st.RegNo}, update, options.Update().SetUpsert(true))
	if err != nil && wafflemongo.IsDup(err) {
		return nil
	}
	return err
}

// SetMarks overwrites the student's marks and returns the updated record.
// Returns mongo.ErrNoDocuments when the student does not exist.
func (s *Store) SetMarks(ctx context.Context, regNo string, marks float64) (models.Student, error) {
	update := bson.M{"$set": bson.M{
		"marks":      marks,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var st models.Student
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"reg_no": regNo}, update, opts).Decode(&st); err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// Search matches students whose name or reg number contains the query
// (case-insensitive), capped at limit results.
func (s *Store) Search(ctx context.Context, query string, limit int64) ([]models.Student, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"reg_no": pattern},
	}}

	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "reg_no", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Student
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of student records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
