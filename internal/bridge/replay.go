package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Frame is a recorded message and its offset from the start of a session.
type Frame struct {
	Offset  time.Duration
	Message Message
}

// Replay is a read-only Client that plays recorded frames back in order.
// Reload restarts playback from the first frame.
type Replay struct {
	*Cache
	frames []Frame
	speed  float64
	logger *slog.Logger
	events chan Event

	mu      sync.Mutex
	closed  bool
	restart chan struct{}
}

// NewReplay plays frames at the given speed multiplier; speed <= 0 plays
// without delays.
func NewReplay(frames []Frame, speed float64, logger *slog.Logger) *Replay {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Replay{
		Cache:   NewCache(),
		frames:  frames,
		speed:   speed,
		logger:  logger.With("component", "replay"),
		events:  make(chan Event, eventBuffer),
		restart: make(chan struct{}, 1),
	}
}

func (r *Replay) Events() <-chan Event { return r.events }

// Run plays every frame, then idles until ctx ends or a reload restarts it.
func (r *Replay) Run(ctx context.Context) error {
	defer r.shutdown()
	for {
		r.Reset()
		if !r.play(ctx) {
			return nil
		}
		r.logger.Info("replay finished", "frames", len(r.frames))
		select {
		case <-ctx.Done():
			return nil
		case <-r.restart:
		}
	}
}

func (r *Replay) play(ctx context.Context) bool {
	start := time.Now()
	for _, f := range r.frames {
		if wait := r.delay(f.Offset) - time.Since(start); wait > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-r.restart:
				r.Reset()
				return r.play(ctx)
			case <-time.After(wait):
			}
		}
		ev, err := f.Message.Event()
		if err != nil {
			r.logger.Warn("skipping frame", "error", err)
			continue
		}
		r.Apply(f.Message)
		select {
		case r.events <- ev:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

func (r *Replay) delay(offset time.Duration) time.Duration {
	if r.speed <= 0 {
		return 0
	}
	return time.Duration(float64(offset) / r.speed)
}

func (r *Replay) Reload() {
	select {
	case r.restart <- struct{}{}:
	default:
	}
}

func (r *Replay) UpdateProperty(uuid, property string, _ any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.events <- Error{Message: "replay is read-only: cannot set " + property + " on " + shortID(uuid)}:
	default:
	}
}

func (r *Replay) shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	close(r.events)
}
