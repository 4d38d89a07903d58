package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

// reportService implements ReportServiceInterface. Reports of closed months
// are served from the report store once materialized; the current and
// future months are always computed from costs and never stored.
type reportService struct {
	costRepo   repositories.CostRepositoryInterface
	reportRepo repositories.ReportRepositoryInterface
	userRepo   repositories.UserRepositoryInterface
	metrics    MetricsRecorderInterface
	clock      Clock
	logger     *slog.Logger
}

func NewReportService(
	costRepo repositories.CostRepositoryInterface,
	reportRepo repositories.ReportRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	logger *slog.Logger,
) ReportServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &reportService{
		costRepo:   costRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

func (s *reportService) GetReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error) {
	startTime := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("report.duration", time.Since(startTime))
	}()

	if err := validatePeriod(userID, year, month); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	key := models.ReportKey{UserID: userID, Year: year, Month: month}
	past := isPastPeriod(year, month, s.clock())

	if past {
		cached, err := s.reportRepo.FindByKey(ctx, key)
		switch {
		case err == nil:
			s.metrics.IncrementCounter("report.cache.lookup", map[string]string{"result": "hit"})
			return &models.MonthlyReport{UserID: userID, Year: year, Month: month, Costs: cached.Costs}, nil
		case errors.Is(err, repositories.ErrReportNotFound):
			s.metrics.IncrementCounter("report.cache.lookup", map[string]string{"result": "miss"})
		default:
			return nil, fmt.Errorf("failed to read report %s: %w", key, err)
		}
	}

	start, end := monthRange(year, month)
	records, err := s.costRepo.FindByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load costs for %s: %w", key, err)
	}

	costs := BuildReport(records, models.Categories)

	if past {
		s.materialize(ctx, key, costs)
	}

	return &models.MonthlyReport{UserID: userID, Year: year, Month: month, Costs: costs}, nil
}

// materialize stores a computed report of a closed month. Failures are
// logged and counted but never returned.
func (s *reportService) materialize(ctx context.Context, key models.ReportKey, costs models.ReportCosts) {
	report := &models.Report{UserID: key.UserID, Year: key.Year, Month: key.Month, Costs: costs}

	err := s.reportRepo.Create(ctx, report)
	switch {
	case err == nil:
		s.metrics.IncrementCounter("report.cache.write", map[string]string{"status": "written"})
	case errors.Is(err, repositories.ErrReportExists):
		s.metrics.IncrementCounter("report.cache.write", map[string]string{"status": "race_lost"})
		s.logger.DebugContext(ctx, "report already materialized by a concurrent request",
			"report", key.String(),
			"trace_id", TraceIDFromContext(ctx),
		)
	default:
		s.metrics.IncrementCounter("report.cache.write", map[string]string{"status": "failed"})
		s.logger.WarnContext(ctx, "failed to materialize report",
			"report", key.String(),
			"trace_id", TraceIDFromContext(ctx),
			"error", err,
		)
	}
}

func validatePeriod(userID int64, year, month int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	}
	if year <= 0 {
		return fmt.Errorf("%w: year must be a positive integer", ErrValidation)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrValidation)
	}
	return nil
}

// isPastPeriod reports whether (year, month) ended before the month of now (UTC)
func isPastPeriod(year, month int, now time.Time) bool {
	now = now.UTC()
	return year < now.Year() || (year == now.Year() && month < int(now.Month()))
}

// monthRange returns the half-open UTC interval [start, end) covering the month
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
