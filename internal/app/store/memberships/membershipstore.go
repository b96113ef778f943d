// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
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
	return &Store{c: db.Collection("group_memberships")}
}

var (
	// ErrAlreadyGrouped means the student holds a membership somewhere,
	// possibly in the same group the caller is adding to.
	ErrAlreadyGrouped = errors.New("student is already in a group")

	// ErrNotInGroup means a removal matched no membership document.
	ErrNotInGroup = errors.New("student is not in this group")
)

// Add enrolls regNo into groupID. The unique index on reg_no makes this a
// single atomic conditional insert: when two requests race, exactly one
// insert wins and the other gets ErrAlreadyGrouped.
func (s *Store) Add(ctx context.Context, groupID primitive.ObjectID, regNo string) error {
	doc := models.GroupMembership{
		ID:        primitive.NewObjectID(),
		GroupID:   groupID,
		RegNo:     regNo,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrAlreadyGrouped
		}
		return err
	}
	return nil
}

// Remove deletes the membership for (groupID, regNo). Removing a student
// who is not in the group reports ErrNotInGroup rather than succeeding
// silently, matched by DeletedCount.
func (s *Store) Remove(ctx context.Context, groupID primitive.ObjectID, regNo string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"group_id": groupID, "reg_no": regNo})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotInGroup
	}
	return nil
}

// RegsByGroup returns the group's reg numbers in join order.
func (s *Store) RegsByGroup(ctx context.Context, groupID primitive.ObjectID) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var regs []string
	for cur.Next(ctx) {
		var m models.GroupMembership
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		regs = append(regs, m.RegNo)
	}
	return regs, cur.Err()
}

// RegsByGroups returns reg numbers for many groups in one query, keyed by
// group ID. Used by the group list so it costs one round trip, not N.
func (s *Store) RegsByGroups(ctx context.Context, groupIDs []primitive.ObjectID) (map[primitive.ObjectID][]string, error) {
	out := make(map[primitive.ObjectID][]string, len(groupIDs))
	if len(groupIDs) == 0 {
		return out, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"group_id": bson.M{"$in": groupIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var m models.GroupMembership
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out[m.GroupID] = append(out[m.GroupID], m.RegNo)
	}
	return out, cur.Err()
}

// FindGroupIDByReg returns the ID of the group regNo belongs to, or
// mongo.ErrNoDocuments when the student is ungrouped.
func (s *Store) FindGroupIDByReg(ctx context.Context, regNo string) (primitive.ObjectID, error) {
	var m models.GroupMembership
	if err := s.c.FindOne(ctx, bson.M{"reg_no": regNo}).Decode(&m); err != nil {
		return primitive.NilObjectID, err
	}
	return m.GroupID, nil
}

// DeleteByGroup removes all memberships for a group. Called when a group
// is deleted so its students become free to join other groups.
func (s *Store) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByGroup returns the number of students enrolled in a group.
func (s *Store) CountByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"group_id": groupID})
}
