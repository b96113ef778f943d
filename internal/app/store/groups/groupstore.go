// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"regexp"
	"strings"
	"time"

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
	return &Store{c: db.Collection("groups")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	g.TitleCI = text.Fold(g.Title)
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// UpdateInfo applies a partial edit: blank fields keep their stored
// values, so a client can change just the subtitle without resending the
// title. Returns mongo.ErrNoDocuments when the group does not exist.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, title, subtitle, banner string) (models.Group, error) {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if strings.TrimSpace(title) != "" {
		set["title"] = title
		set["title_ci"] = text.Fold(title)
	}
	if strings.TrimSpace(subtitle) != "" {
		set["subtitle"] = subtitle
	}
	if strings.TrimSpace(banner) != "" {
		set["banner"] = banner
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// SetMarks overwrites the group's aggregate marks and stamps when they
// were set. Returns mongo.ErrNoDocuments when the group does not exist.
func (s *Store) SetMarks(ctx context.Context, id primitive.ObjectID, marks float64) (models.Group, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"group_marks":            marks,
		"group_marks_updated_at": now,
		"updated_at":             now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// Delete removes a group by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByTeacher returns all groups owned by teacherID, newest first.
func (s *Store) ListByTeacher(ctx context.Context, teacherID primitive.ObjectID) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"teacher_id": teacherID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByTeacher matches the teacher's own groups whose title or subtitle
// contains the query (case-insensitive).
func (s *Store) SearchByTeacher(ctx context.Context, teacherID primitive.ObjectID, query string) ([]models.Group, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"teacher_id": teacherID,
		"$or": []bson.M{
			{"title": pattern},
			{"subtitle": pattern},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "title_ci", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Group
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
