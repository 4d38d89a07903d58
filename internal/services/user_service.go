package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

type userService struct {
	userRepo repositories.UserRepositoryInterface
	costRepo repositories.CostRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	costRepo repositories.CostRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &userService{
		userRepo: userRepo,
		costRepo: costRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncrementCounter("user.created", nil)
	s.logger.InfoContext(ctx, "user created", "user_id", user.ID, "trace_id", TraceIDFromContext(ctx))

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	s.metrics.RecordGauge("users.total", float64(len(users)), nil)
	return users, nil
}

// GetUserDetails returns the user's names together with the sum of all
// their costs.
func (s *userService) GetUserDetails(ctx context.Context, userID int64) (*models.UserDetails, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	total, err := s.costRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to total costs: %w", err)
	}

	return &models.UserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.ID,
		Total:     total,
	}, nil
}
