package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationRequest is a request for blood in the "donationRequests"
// collection. Status always starts at "pending"; the donor fields are
// attached when a donor confirms and hold only the latest confirmation.
type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName  string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	BloodGroup     string             `bson:"bloodGroup" json:"bloodGroup"`
	District       string             `bson:"district" json:"district"`
	Upazila        string             `bson:"upazila" json:"upazila"`
	HospitalName   string             `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	FullAddress    string             `bson:"fullAddress,omitempty" json:"fullAddress,omitempty"`
	DonationDate   string             `bson:"donationDate,omitempty" json:"donationDate,omitempty"`
	DonationTime   string             `bson:"donationTime,omitempty" json:"donationTime,omitempty"`
	RequestMessage string             `bson:"requestMessage,omitempty" json:"requestMessage,omitempty"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`

	DonorName  string `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail string `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
}
