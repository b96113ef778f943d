// internal/app/store/queries/grouproster/grouproster.go
package grouproster

import (
	"context"

	"github.com/rosterhub/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListGroupStudents returns the full student records for a group's roster,
// in join order. Membership rows whose student record has been deleted are
// dropped by the $unwind.
func ListGroupStudents(ctx context.Context, db *mongo.Database, groupID primitive.ObjectID) ([]models.Student, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"group_id": groupID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "students",
			"localField":   "reg_no",
			"foreignField": "reg_no",
			"as":           "student",
		}}},
		bson.D{{Key: "$unwind", Value: "$student"}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$student"}}},
	}

	cur, err := db.Collection("group_memberships").Aggregate(ctx, pipe)
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
