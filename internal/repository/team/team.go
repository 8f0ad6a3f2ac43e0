package team

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/repository"
)

// GetForUser retrieves the team the user belongs to. Soft-deleted users have
// no team. When the user belongs to several teams the earliest membership
// wins. Returns sql.ErrNoRows when there is no team.
func GetForUser(ctx context.Context, exec repository.DBTX, userID int64) (*domain.Team, error) {
	query := `
		SELECT t.id, t.name, t.created_at, t.updated_at,
		       t.stripe_customer_id, t.plan_name, t.subscription_status
		FROM team_members tm
		JOIN teams t ON t.id = tm.team_id
		JOIN users u ON u.id = tm.user_id
		WHERE tm.user_id = $1 AND u.deleted_at IS NULL
		ORDER BY tm.joined_at, tm.id
		LIMIT 1
	`

	var (
		t                  domain.Team
		createdAt          sql.NullTime
		updatedAt          sql.NullTime
		stripeCustomerID   sql.NullString
		planName           sql.NullString
		subscriptionStatus sql.NullString
	)

	err := exec.QueryRowContext(ctx, query, userID).Scan(
		&t.ID,
		&t.Name,
		&createdAt,
		&updatedAt,
		&stripeCustomerID,
		&planName,
		&subscriptionStatus,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team for user: %w", err)
	}

	if createdAt.Valid {
		t.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		t.UpdatedAt = &updatedAt.Time
	}
	t.StripeCustomerID = nullStringPtr(stripeCustomerID)
	t.PlanName = nullStringPtr(planName)
	t.SubscriptionStatus = nullStringPtr(subscriptionStatus)

	return &t, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
