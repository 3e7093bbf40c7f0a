// Package userstore persists users in the "users" collection.
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/normalize"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/roles"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/status"
	"github.com/mahmudul-dev/bloodlink/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrExists is returned by Register when a user with the email already
	// exists. Callers report it as an idempotent no-op, not a failure.
	ErrExists = errors.New("user already exists")

	// ErrBadRole is returned when a role outside the known set is supplied.
	ErrBadRole = errors.New(`role must be "donor"|"volunteer"|"admin"`)
)

// List returns all users matching the given equality filter, in store-native
// order. An empty filter returns every user.
func (s *Store) List(ctx context.Context, filter bson.M) ([]models.User, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Register creates a user with role donor and status active, keyed by email.
// Registration is idempotent: if the email is already taken, ErrExists is
// returned and nothing is written.
//
// The existence check and insert are not atomic; the unique index on email
// closes that race, and a duplicate-key error from the insert is mapped to
// the same ErrExists outcome.
func (s *Store) Register(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)

	err := s.c.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return models.User{}, ErrExists
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	u.ID = primitive.NewObjectID()
	u.Role = roles.Donor
	u.Status = status.Active
	u.CreatedAt = time.Now()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrExists
		}
		return models.User{}, err
	}
	return u, nil
}

// RoleByEmail returns the stored role for the user with the given email.
// Returns mongo.ErrNoDocuments if no such user exists.
func (s *Store) RoleByEmail(ctx context.Context, email string) (string, error) {
	var u struct {
		Role string `bson:"role"`
	}
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// UpdateRole sets the user's role unconditionally. Any known role may move
// to any other. Returns ErrBadRole for an unknown role and
// mongo.ErrNoDocuments if the user does not exist; neither writes anything.
func (s *Store) UpdateRole(ctx context.Context, id primitive.ObjectID, newRole string) error {
	if !roles.IsValid(newRole) {
		return ErrBadRole
	}

	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Err(); err != nil {
		return err
	}

	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": newRole}})
	return err
}

// ProfileUpdate holds the profile fields a user may change. Nil fields are
// left untouched in the stored document.
type ProfileUpdate struct {
	DisplayName *string
	District    *string
	Upazila     *string
	BloodGroup  *string
	PhotoURL    *string
}

// UpdateProfile sets the supplied fields on the user matched by email. A
// no-match update is not an error; the returned result carries a zero
// modified count.
func (s *Store) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*mongo.UpdateResult, error) {
	set := bson.M{}
	if upd.DisplayName != nil {
		set["displayName"] = *upd.DisplayName
	}
	if upd.District != nil {
		set["district"] = *upd.District
	}
	if upd.Upazila != nil {
		set["upazila"] = *upd.Upazila
	}
	if upd.BloodGroup != nil {
		set["bloodGroup"] = *upd.BloodGroup
	}
	if upd.PhotoURL != nil {
		set["photoURL"] = *upd.PhotoURL
	}
	if len(set) == 0 {
		// Nothing to write; report a matched-nothing result.
		return &mongo.UpdateResult{}, nil
	}

	return s.c.UpdateOne(ctx, bson.M{"email": normalize.Email(email)}, bson.M{"$set": set})
}

// SearchDonors returns active donors, optionally narrowed by blood group,
// district and upazila exact matches.
func (s *Store) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]models.User, error) {
	filter := bson.M{"role": roles.Donor, "status": status.Active}
	if bloodGroup != "" {
		filter["bloodGroup"] = bloodGroup
	}
	if district != "" {
		filter["district"] = district
	}
	if upazila != "" {
		filter["upazila"] = upazila
	}
	return s.List(ctx, filter)
}
