package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
)

const (
	DefaultLogQueueSize = 1024
	DefaultLogWorkers   = 2
	DefaultLogListLimit = 1000
	MaxLogListLimit     = 5000
	logWriteTimeout     = 5 * time.Second
)

// logService persists request logs off the request path. Entries are
// queued by Enqueue and written by the workers started in Run.
type logService struct {
	logRepo repositories.LogRepositoryInterface
	metrics MetricsRecorderInterface
	queue   chan models.Log
	workers int
	logger  *slog.Logger

	// depthMu orders queue-depth readings so the gauge ends on the latest one
	depthMu sync.Mutex
}

func NewLogService(
	logRepo repositories.LogRepositoryInterface,
	metrics MetricsRecorderInterface,
	queueSize int,
	workers int,
	logger *slog.Logger,
) LogServiceInterface {
	if queueSize <= 0 {
		queueSize = DefaultLogQueueSize
	}
	if workers <= 0 {
		workers = DefaultLogWorkers
	}
	return &logService{
		logRepo: logRepo,
		metrics: metrics,
		queue:   make(chan models.Log, queueSize),
		workers: workers,
		logger:  logger,
	}
}

// Enqueue queues entry for persistence. It returns false and drops the
// entry when the queue is full.
func (s *logService) Enqueue(entry models.Log) bool {
	select {
	case s.queue <- entry:
		s.recordQueueDepth()
		return true
	default:
		s.metrics.IncrementCounter("request_log.persisted", map[string]string{"status": "dropped"})
		s.logger.Warn("request log queue full, dropping entry", "path", entry.Path, "trace_id", entry.TraceID)
		return false
	}
}

// Run writes queued entries until ctx is cancelled, then flushes what is
// still queued and returns.
func (s *logService) Run(ctx context.Context) {
	s.logger.Info("starting request log writer", "workers", s.workers)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case entry := <-s.queue:
					s.recordQueueDepth()
					s.persist(entry)
				}
			}
		}()
	}

	wg.Wait()
	s.flush()
	s.logger.Info("request log writer stopped")
}

func (s *logService) flush() {
	for {
		select {
		case entry := <-s.queue:
			s.recordQueueDepth()
			s.persist(entry)
		default:
			return
		}
	}
}

func (s *logService) recordQueueDepth() {
	s.depthMu.Lock()
	defer s.depthMu.Unlock()
	s.metrics.RecordGauge("request_log.queue_depth", float64(len(s.queue)), nil)
}

func (s *logService) persist(entry models.Log) {
	ctx, cancel := context.WithTimeout(context.Background(), logWriteTimeout)
	defer cancel()

	if err := s.logRepo.Create(ctx, &entry); err != nil {
		s.metrics.IncrementCounter("request_log.persisted", map[string]string{"status": "failed"})
		s.logger.Error("failed to persist request log", "path", entry.Path, "trace_id", entry.TraceID, "error", err)
		return
	}

	s.metrics.IncrementCounter("request_log.persisted", map[string]string{"status": "success"})
}

func (s *logService) ListLogs(ctx context.Context, offset, limit int) ([]models.Log, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrValidation)
	}
	if limit <= 0 {
		limit = DefaultLogListLimit
	}
	if limit > MaxLogListLimit {
		limit = MaxLogListLimit
	}

	logs, err := s.logRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	return logs, nil
}
