package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered person in the "users" collection. Every user is
// created as an active donor; role changes only happen through the admin
// role-update endpoint.
//
// Field names in bson tags are camelCase to match the documents the
// production database already holds.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	BloodGroup string             `bson:"bloodGroup" json:"bloodGroup"`
	District   string             `bson:"district" json:"district"`
	Upazila    string             `bson:"upazila" json:"upazila"`
	Role       string             `bson:"role" json:"role"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`

	// Set only via the profile-update endpoint.
	DisplayName string `bson:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
}
