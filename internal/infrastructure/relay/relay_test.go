package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/usecase"
)

type stubOutboxRepo struct {
	events    []*domain.OutboxEvent
	processed []string
	failed    []string
	getErr    error
}

func (s *stubOutboxRepo) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	return nil
}

func (s *stubOutboxRepo) GetPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if limit < len(s.events) {
		return s.events[:limit], nil
	}
	return s.events, nil
}

func (s *stubOutboxRepo) MarkProcessed(ctx context.Context, id string, processedAt time.Time) error {
	s.processed = append(s.processed, id)
	return nil
}

func (s *stubOutboxRepo) MarkFailed(ctx context.Context, id string) error {
	s.failed = append(s.failed, id)
	return nil
}

type stubPublisher struct {
	published  []*domain.OutboxEvent
	errorsByID map[string]error
}

func (s *stubPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	if err, ok := s.errorsByID[event.ID]; ok {
		return err
	}
	s.published = append(s.published, event)
	return nil
}

func newTestRelay(repo *stubOutboxRepo, pub *stubPublisher) *Relay {
	return New(Config{
		OutboxRepo: repo,
		Publisher:  pub,
		Logger:     zerolog.Nop(),
		BatchSize:  10,
		Interval:   time.Millisecond,
	})
}

func TestProcessBatchPublishesAndMarks(t *testing.T) {
	repo := &stubOutboxRepo{
		events: []*domain.OutboxEvent{{ID: "evt-1", EventType: domain.EventTypeLedgerPosted}},
	}
	pub := &stubPublisher{}
	r := newTestRelay(repo, pub)

	if err := r.processBatch(context.Background()); err != nil {
		t.Fatalf("processBatch failed: %v", err)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.published))
	}
	if len(repo.processed) != 1 || repo.processed[0] != "evt-1" {
		t.Fatalf("expected event to be marked processed, got %#v", repo.processed)
	}
}

func TestProcessBatchContinuesOnPublishError(t *testing.T) {
	repo := &stubOutboxRepo{
		events: []*domain.OutboxEvent{
			{ID: "evt-1", EventType: domain.EventTypeLedgerPosted},
			{ID: "evt-2", EventType: domain.EventTypeLedgerPosted},
		},
	}
	pub := &stubPublisher{
		errorsByID: map[string]error{"evt-1": errors.New("broker unavailable")},
	}
	r := newTestRelay(repo, pub)

	if err := r.processBatch(context.Background()); err != nil {
		t.Fatalf("processBatch returned error: %v", err)
	}

	if len(pub.published) != 1 || pub.published[0].ID != "evt-2" {
		t.Fatalf("expected evt-2 to be published, got %#v", pub.published)
	}
	if len(repo.failed) != 1 || repo.failed[0] != "evt-1" {
		t.Fatalf("expected evt-1 to be marked failed, got %#v", repo.failed)
	}
	if len(repo.processed) != 1 || repo.processed[0] != "evt-2" {
		t.Fatalf("expected evt-2 to be marked processed, got %#v", repo.processed)
	}
}

func TestProcessBatchPropagatesFetchError(t *testing.T) {
	repo := &stubOutboxRepo{getErr: errors.New("db down")}
	r := newTestRelay(repo, &stubPublisher{})

	if err := r.processBatch(context.Background()); err == nil {
		t.Fatalf("expected fetch error")
	}
}

func TestStartStopsOnContextCancel(t *testing.T) {
	repo := &stubOutboxRepo{}
	r := newTestRelay(repo, &stubPublisher{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("relay did not stop after cancel")
	}
}
