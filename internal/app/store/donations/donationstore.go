// Package donationstore persists donation requests in the
// "donationRequests" collection.
package donationstore

import (
	"context"
	"errors"
	"time"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/normalize"
	"github.com/mahmudul-dev/bloodlink/internal/app/system/status"
	"github.com/mahmudul-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donationRequests")}
}

var (
	// ErrBadStatus is returned when an unknown status value is supplied.
	ErrBadStatus = errors.New(`status must be "pending"|"inprogress"|"done"|"canceled"`)

	// ErrBadTransition is returned when the requested status change is not
	// allowed from the request's current status.
	ErrBadTransition = errors.New("status transition not allowed")
)

// Create inserts a new donation request. Status and createdAt are set here
// regardless of what the caller supplied; every request starts pending.
func (s *Store) Create(ctx context.Context, req models.DonationRequest) (models.DonationRequest, error) {
	req.ID = primitive.NewObjectID()
	req.RequesterEmail = normalize.Email(req.RequesterEmail)
	req.Status = status.Pending
	req.CreatedAt = time.Now()
	req.DonorName = ""
	req.DonorEmail = ""

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.DonationRequest{}, err
	}
	return req, nil
}

// ListByRequester returns one page of the requester's donation requests plus
// the total count of all matches. The count ignores pagination so callers
// can compute page counts. statusFilter narrows by status when non-empty.
func (s *Store) ListByRequester(ctx context.Context, email, statusFilter string, skip, limit int64) ([]models.DonationRequest, int64, error) {
	filter := bson.M{"requesterEmail": normalize.Email(email)}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// Delete removes the request with the given identifier. A deleted count of
// zero is not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SetStatus moves the request to newStatus if the lifecycle allows it.
// Returns ErrBadStatus for an unknown status, mongo.ErrNoDocuments if the
// request does not exist, and ErrBadTransition if the move is disallowed
// from the current status.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, newStatus string) (*mongo.UpdateResult, error) {
	if !status.IsValid(newStatus) {
		return nil, ErrBadStatus
	}

	cur, err := s.currentStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.CanTransition(cur, newStatus) {
		return nil, ErrBadTransition
	}

	return s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": newStatus}})
}

// Confirm attaches a donor to the request and moves it to inprogress. A
// request that is already inprogress may be confirmed again; the new donor
// replaces the previous one. Terminal requests cannot be confirmed.
func (s *Store) Confirm(ctx context.Context, id primitive.ObjectID, donorName, donorEmail string) (*mongo.UpdateResult, error) {
	cur, err := s.currentStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.CanConfirm(cur) {
		return nil, ErrBadTransition
	}

	return s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status.InProgress,
		"donorName":  normalize.Name(donorName),
		"donorEmail": normalize.Email(donorEmail),
	}})
}

// ListPending returns all pending requests, newest first.
func (s *Store) ListPending(ctx context.Context) ([]models.DonationRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"status": status.Pending}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAll returns every donation request with no filter.
func (s *Store) ListAll(ctx context.Context) ([]models.DonationRequest, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []models.DonationRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Store) currentStatus(ctx context.Context, id primitive.ObjectID) (string, error) {
	var doc struct {
		Status string `bson:"status"`
	}
	opts := options.FindOne().SetProjection(bson.M{"status": 1})
	if err := s.c.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		return "", err
	}
	return doc.Status, nil
}
