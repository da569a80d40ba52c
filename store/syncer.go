package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Fulozz/daily-journal/internal/apierr"
	"github.com/Fulozz/daily-journal/internal/shardqueue"
)

// ErrMutationInFlight is returned when a mutation targets a record whose
// previous mutation has not been confirmed yet. Out-of-order confirmation is
// only safe when no two in-flight mutations share an id.
var ErrMutationInFlight = errors.New("store: mutation already in flight for record")

// Fetcher retrieves the full authoritative collection; it backs both the
// initial load and the revert path.
type Fetcher[R Record] func(ctx context.Context) ([]R, error)

// Config tunes a Syncer. Zero values fall back to defaults.
type Config struct {
	// Shards and QueueSize size the confirmation executor.
	Shards    int
	QueueSize int

	// Retry knobs for recoverable confirmation failures.
	MaxAttempts int
	BaseBackoff time.Duration
	MaxInterval time.Duration

	// OnError receives the terminal error of a reverted mutation, for a
	// user-visible notification. Optional.
	OnError func(error)

	// OnUnauthorized fires when a confirmation fails with an expired
	// credential; the caller should redirect to login. Optional.
	OnUnauthorized func()
}

// Syncer applies the optimistic-update protocol to a List:
//
//  1. apply the mutation speculatively, before the network call resolves;
//  2. run the client call on a per-id FIFO queue;
//  3. on success, accept the server record as authoritative;
//  4. on an endpoint-missing 404, let the speculative state stand;
//  5. on any other failure, revert by refetching the full collection and
//     surface the error.
//
// Last write observed wins; there are no version checks. Confirmations are
// never cancelled by view switches — a late confirmation for a record that
// is no longer visible is a no-op.
type Syncer[R Record] struct {
	list  *List[R]
	exec  *shardqueue.ShardExecutor
	fetch Fetcher[R]

	onError        func(error)
	onUnauthorized func()

	inflight inflightSet
}

// NewSyncer builds a Syncer around fetch and starts its confirmation
// executor.
func NewSyncer[R Record](fetch Fetcher[R], cfg Config) *Syncer[R] {
	s := &Syncer[R]{
		list:           NewList[R](),
		fetch:          fetch,
		onError:        cfg.OnError,
		onUnauthorized: cfg.OnUnauthorized,
	}
	s.inflight.init()
	s.exec = shardqueue.NewShardExecutor(shardqueue.Config{
		Shards:       cfg.Shards,
		QueueSize:    cfg.QueueSize,
		MaxAttempts:  cfg.MaxAttempts,
		BaseBackoff:  cfg.BaseBackoff,
		MaxInterval:  cfg.MaxInterval,
		ErrorHandler: s.handleTerminal,
	})
	return s
}

// List exposes the visible collection.
func (s *Syncer[R]) List() *List[R] { return s.list }

// Close drains pending confirmations and stops the executor.
func (s *Syncer[R]) Close() { s.exec.Stop() }

// Await blocks until every confirmation previously submitted for id has run.
// Tests and logout flows use it to flush the queue.
func (s *Syncer[R]) Await(ctx context.Context, id string) error {
	return s.exec.Barrier(ctx, id)
}

// Refresh synchronously replaces the collection with the server's view.
// An endpoint-missing 404 is returned to the caller, which may substitute
// placeholder data via List().Reset.
func (s *Syncer[R]) Refresh(ctx context.Context) error {
	items, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.list.Reset(items)
	return nil
}

// Create splices speculative in at the head and confirms it against call.
// The speculative record needs a caller-generated id; on success it is
// replaced by the server record, whatever id the server assigned.
func (s *Syncer[R]) Create(ctx context.Context, speculative R, call func(context.Context) (R, error)) error {
	id := speculative.RecordID()
	if !s.inflight.begin(id) {
		return ErrMutationInFlight
	}
	s.list.InsertHead(speculative)
	mutationsApplied.WithLabelValues("create").Inc()
	return s.submit(ctx, id, "create", func(jobCtx context.Context) error {
		confirmed, err := call(jobCtx)
		if err != nil {
			return err
		}
		s.list.Replace(id, confirmed)
		return nil
	})
}

// Update replaces the visible record synchronously and confirms against
// call, which returns the authoritative server record.
func (s *Syncer[R]) Update(ctx context.Context, id string, speculative R, call func(context.Context) (R, error)) error {
	if !s.inflight.begin(id) {
		return ErrMutationInFlight
	}
	s.list.Replace(id, speculative)
	mutationsApplied.WithLabelValues("update").Inc()
	return s.submit(ctx, id, "update", func(jobCtx context.Context) error {
		confirmed, err := call(jobCtx)
		if err != nil {
			return err
		}
		s.list.Replace(id, confirmed)
		return nil
	})
}

// Delete removes the record synchronously and confirms the deletion.
func (s *Syncer[R]) Delete(ctx context.Context, id string, call func(context.Context) error) error {
	if !s.inflight.begin(id) {
		return ErrMutationInFlight
	}
	s.list.Remove(id)
	mutationsApplied.WithLabelValues("delete").Inc()
	return s.submit(ctx, id, "delete", call)
}

// submit enqueues the confirmation on the shard for id. The job runs with a
// background context: in-flight requests are not aborted when the initiating
// view goes away, the caller's ctx only governs the enqueue itself.
func (s *Syncer[R]) submit(ctx context.Context, id, action string, run func(context.Context) error) error {
	job := shardqueue.JobFunc(func(jobCtx context.Context) error {
		err := run(jobCtx)
		if err == nil || apierr.IsEndpointMissing(err) {
			// Backend absence is a known, accepted condition: the
			// speculative state stands.
			s.inflight.end(id)
			mutationsConfirmed.WithLabelValues(action).Inc()
			return nil
		}
		return &mutationFailure{action: action, id: id, err: err}
	})
	// Drop the caller's cancellation: a view switch must not abort an
	// enqueued confirmation, only the EnqueueTimeout bounds the wait.
	if err := s.exec.Submit(context.WithoutCancel(ctx), id, job); err != nil {
		// Never enqueued: undo the speculative change right away.
		s.inflight.end(id)
		s.revert(action, err)
		return err
	}
	return nil
}

// handleTerminal runs when a confirmation fails for good (irrecoverable or
// out of retries). It rolls the collection back and surfaces the error.
func (s *Syncer[R]) handleTerminal(err error) {
	var mf *mutationFailure
	if !errors.As(err, &mf) {
		if s.onError != nil {
			s.onError(err)
		}
		return
	}
	s.inflight.end(mf.id)
	s.revert(mf.action, mf.err)
	if apierr.IsUnauthorized(mf.err) && s.onUnauthorized != nil {
		s.onUnauthorized()
	}
	if s.onError != nil {
		s.onError(mf.err)
	}
}

// revert restores the pre-mutation state by refetching the full collection
// rather than replaying an inverse mutation — simpler, and immune to drift.
func (s *Syncer[R]) revert(action string, cause error) {
	mutationsReverted.WithLabelValues(action).Inc()
	items, err := s.fetch(context.Background())
	if err != nil {
		log.Warn().Err(err).Str("action", action).Msg("store: revert refetch failed, keeping speculative state")
		return
	}
	s.list.Reset(items)
	log.Debug().Err(cause).Str("action", action).Msg("store: reverted optimistic mutation")
}

// mutationFailure carries the revert context through the executor's retry
// loop to the terminal error handler.
type mutationFailure struct {
	action string
	id     string
	err    error
}

func (m *mutationFailure) Error() string { return m.err.Error() }
func (m *mutationFailure) Unwrap() error { return m.err }
