package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

func (db Database) UserInsert(ctx context.Context, u model.User) error {
	u.NormalizeLists()
	u.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	_, err := db.Collection(CollectionUsers).InsertOne(ctx, u)
	return errors.Wrapf(err, "error inserting User with email: %s", u.Email)
}

func (db Database) UserFindByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := db.Collection(CollectionUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return u, errors.Wrapf(err, "error finding User with ID: %s", id)
	}
	u.NormalizeLists()
	return u, nil
}

func (db Database) UserFindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := db.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		return u, errors.Wrapf(err, "error finding User with email: %s", email)
	}
	u.NormalizeLists()
	return u, nil
}

// UserReplace writes the whole User document back. The document is the unit
// of atomicity, concurrent writers to the same user are last-write-wins.
func (db Database) UserReplace(ctx context.Context, u model.User) error {
	res, err := db.Collection(CollectionUsers).ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return errors.Wrapf(err, "error replacing User with ID: %s", u.ID)
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(mongo.ErrNoDocuments, "no User matched when replacing User with ID: %s", u.ID)
	}
	return nil
}

func (db Database) UserDelete(ctx context.Context, id string) error {
	res, err := db.Collection(CollectionUsers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting User with ID: %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(mongo.ErrNoDocuments, "no User matched when deleting User with ID: %s", id)
	}
	return nil
}
