package journal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jask/scenescope/internal/bridge"
)

// Recorder appends every inbound message of one session. Record matches
// bridge.Options.OnMessage.
type Recorder struct {
	store   *Store
	session Session
	now     func() time.Time
	logger  *slog.Logger

	mu     sync.Mutex
	seq    int
	failed bool
}

// NewRecorder starts a session for target.
func NewRecorder(ctx context.Context, store *Store, target string, logger *slog.Logger) (*Recorder, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sess, err := store.StartSession(ctx, target, time.Now())
	if err != nil {
		return nil, err
	}
	logger.Info("journal session started", "session", sess.ID, "target", target)
	return &Recorder{
		store:   store,
		session: sess,
		now:     time.Now,
		logger:  logger.With("component", "journal", "session", sess.ID),
	}, nil
}

func (r *Recorder) Session() Session { return r.session }

// Record stores msg. A write failure is logged once and recording continues
// best effort; the live view never depends on the journal.
func (r *Recorder) Record(msg bridge.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	offset := r.now().Sub(r.session.StartedAt)
	if offset < 0 {
		offset = 0
	}
	if err := r.store.Append(context.Background(), r.session.ID, r.seq, offset, msg); err != nil {
		if !r.failed {
			r.logger.Error("journal write failed", "error", err)
		}
		r.failed = true
	}
}
