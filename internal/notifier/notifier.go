package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/washhub/washhub/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var dispatching sync.Map

type Repo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id int) error
}

// Sink is the boundary to the external push-delivery system.
type Sink interface {
	Send(ctx context.Context, n domain.Notification) error
}

type Service struct {
	repo           Repo
	sink           Sink
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(repo Repo, sink Sink) *Service {
	return &Service{
		repo:           repo,
		sink:           sink,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notification dispatcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notification dispatcher")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	notifications, err := s.repo.FindPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, n := range notifications {
		n := n

		if _, loaded := dispatching.LoadOrStore(n.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer dispatching.Delete(n.ID)
				return s.dispatch(ctx, n)
			})
			if err != nil {
				dispatching.Delete(n.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching notifications", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, n domain.Notification) error {
	if err := s.sink.Send(ctx, n); err != nil {
		return fmt.Errorf("failed to deliver notification %d: %w", n.ID, err)
	}
	if err := s.repo.MarkSent(ctx, n.ID); err != nil {
		return fmt.Errorf("failed to mark notification %d sent: %w", n.ID, err)
	}
	return nil
}

// LogSink stands in for the external push system; delivery itself is out of
// process.
type LogSink struct{}

func (LogSink) Send(_ context.Context, n domain.Notification) error {
	zap.L().Info("notification dispatched",
		zap.Int("id", n.ID),
		zap.String("title", n.Title),
		zap.String("audience", n.Audience),
	)
	return nil
}
