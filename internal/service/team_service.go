package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/repository/team"
)

// TeamService handles team business logic.
type TeamService struct {
	db *sql.DB
}

// NewTeamService creates a new team service.
func NewTeamService(db *sql.DB) *TeamService {
	return &TeamService{db: db}
}

// TeamForSession returns the team of the session's user. It returns nil
// without an error for anonymous sessions and users without a team.
func (s *TeamService) TeamForSession(ctx context.Context, sess *domain.Session) (*domain.Team, error) {
	if sess == nil {
		return nil, nil
	}

	t, err := team.GetForUser(ctx, s.db, sess.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}
