package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

const (
	maxGeneratedCosts  = 500
	maxGeneratedMonths = 24
)

type costService struct {
	costRepo  repositories.CostRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	generator CostGeneratorInterface
	metrics   MetricsRecorderInterface
	clock     Clock
	logger    *slog.Logger
}

func NewCostService(
	costRepo repositories.CostRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	generator CostGeneratorInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	logger *slog.Logger,
) CostServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &costService{
		costRepo:  costRepo,
		userRepo:  userRepo,
		generator: generator,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// AddCost records a cost for an existing user. A cost dated in a closed
// month is accepted; an already materialized report for that month is left
// as it is.
func (s *costService) AddCost(ctx context.Context, cost *models.Cost) (*models.Cost, error) {
	if !models.IsValidCategory(cost.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, cost.Category)
	}

	if err := s.ensureUser(ctx, cost.UserID); err != nil {
		return nil, err
	}

	if cost.CreatedAt.IsZero() {
		cost.CreatedAt = s.clock().UTC()
	}

	if err := cost.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	if err := s.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to save cost: %w", err)
	}

	s.metrics.IncrementCounter("cost.created", map[string]string{"category": cost.Category})
	s.logger.InfoContext(ctx, "cost added",
		"user_id", cost.UserID,
		"category", cost.Category,
		"cost_id", cost.ID,
		"trace_id", TraceIDFromContext(ctx),
	)

	return cost, nil
}

// GenerateCosts stores count fabricated costs for the user spread over the
// last months months.
func (s *costService) GenerateCosts(ctx context.Context, userID int64, count, months int) ([]models.Cost, error) {
	if count < 1 || count > maxGeneratedCosts {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrValidation, maxGeneratedCosts)
	}
	if months < 1 || months > maxGeneratedMonths {
		return nil, fmt.Errorf("%w: months must be between 1 and %d", ErrValidation, maxGeneratedMonths)
	}

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	costs := s.generator.GenerateCosts(userID, count, months, s.clock().UTC())
	if err := s.costRepo.CreateBatch(ctx, costs); err != nil {
		return nil, fmt.Errorf("failed to save generated costs: %w", err)
	}

	s.metrics.IncrementCounter("cost.generated", map[string]string{"count": strconv.Itoa(len(costs))})
	s.logger.InfoContext(ctx, "generated costs",
		"user_id", userID,
		"count", len(costs),
		"months", months,
	)

	return costs, nil
}

func (s *costService) ensureUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userid must be a positive integer", ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}

	return nil
}
