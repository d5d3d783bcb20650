package helpers

import (
	"context"
	"sync/atomic"

	"github.com/familyledger/finance-backend/internal/domain/models"
	"github.com/familyledger/finance-backend/internal/domain/usecase"
)

// SetupStageResolver derives the first-run stage from the stored users and
// workspaces. Once complete, the stage is remembered and never queried again.
type SetupStageResolver struct {
	Users      usecase.CountUsersRepository
	Workspaces usecase.CountWorkspacesRepository
	completed  atomic.Bool
}

func NewSetupStageResolver(users usecase.CountUsersRepository, workspaces usecase.CountWorkspacesRepository) *SetupStageResolver {
	return &SetupStageResolver{Users: users, Workspaces: workspaces}
}

func (s *SetupStageResolver) Stage(ctx context.Context) (models.SetupStage, error) {
	if s.completed.Load() {
		return models.SetupStageComplete, nil
	}

	users, err := s.Users.Count(ctx, "")
	if err != nil {
		return "", err
	}
	if users == 0 {
		return models.SetupStageCreateUser, nil
	}

	workspaces, err := s.Workspaces.Count(ctx)
	if err != nil {
		return "", err
	}
	if workspaces == 0 {
		return models.SetupStageCreateWorkspace, nil
	}

	s.completed.Store(true)
	return models.SetupStageComplete, nil
}
