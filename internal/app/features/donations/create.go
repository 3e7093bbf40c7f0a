package donations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mahmudul-dev/bloodlink/internal/app/system/timeouts"
	"github.com/mahmudul-dev/bloodlink/internal/domain/models"
)

// createRequest is the JSON body for POST /donation-request. The schema is
// an allow-list: unknown fields are rejected. Status and createdAt are
// accepted for compatibility with older clients but ignored; the store
// forces pending/now.
type createRequest struct {
	RequesterEmail string `json:"requesterEmail"`
	RequesterName  string `json:"requesterName"`
	RecipientName  string `json:"recipientName"`
	BloodGroup     string `json:"bloodGroup"`
	District       string `json:"district"`
	Upazila        string `json:"upazila"`
	HospitalName   string `json:"hospitalName"`
	FullAddress    string `json:"fullAddress"`
	DonationDate   string `json:"donationDate"`
	DonationTime   string `json:"donationTime"`
	RequestMessage string `json:"requestMessage"`

	Status    json.RawMessage `json:"status"`
	CreatedAt json.RawMessage `json:"createdAt"`
}

// HandleCreate handles POST /donation-request.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var body createRequest
	if err := dec.Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Invalid request body"})
		return
	}

	required := []struct{ name, value string }{
		{"requesterEmail", body.RequesterEmail},
		{"recipientName", body.RecipientName},
		{"bloodGroup", body.BloodGroup},
		{"district", body.District},
		{"upazila", body.Upazila},
	}
	for _, f := range required {
		if f.value == "" {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": f.name + " is required"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Donations.Create(ctx, models.DonationRequest{
		RequesterEmail: body.RequesterEmail,
		RequesterName:  body.RequesterName,
		RecipientName:  body.RecipientName,
		BloodGroup:     body.BloodGroup,
		District:       body.District,
		Upazila:        body.Upazila,
		HospitalName:   body.HospitalName,
		FullAddress:    body.FullAddress,
		DonationDate:   body.DonationDate,
		DonationTime:   body.DonationTime,
		RequestMessage: body.RequestMessage,
	})
	if err != nil {
		h.serverError(w, "create", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Donation request created",
		"insertedId": created.ID.Hex(),
	})
}
