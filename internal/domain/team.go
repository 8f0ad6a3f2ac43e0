package domain

import "time"

// Team is the team record returned to the current session's user.
// Optional columns are omitted from JSON when unset so the record is
// returned exactly as stored.
type Team struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
	StripeCustomerID   *string    `json:"stripeCustomerId,omitempty"`
	PlanName           *string    `json:"planName,omitempty"`
	SubscriptionStatus *string    `json:"subscriptionStatus,omitempty"`
}
