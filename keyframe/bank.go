package keyframe

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"golang.org/x/sync/errgroup"
	"honnef.co/go/animcurve"
)

// Bank is a set of named tracks sharing a configuration.
//
// Evaluated polylines are memoized by curve, not by track: tracks with the
// same kind, domain, depth and keyframes are evaluated once.
type Bank struct {
	cfg    Config
	logger l.Wrapper
	memo   *cache.Cache

	mu     sync.RWMutex
	tracks map[string]*Track
}

// NewBank returns an empty bank. A nil logger discards log output.
func NewBank(cfg Config, logger l.Wrapper) *Bank {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	cfg = cfg.withDefaults()

	return &Bank{
		cfg:    cfg,
		logger: logger.WithFields(l.StringField(l.ClsKey, "keyframeBank")),
		memo:   cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		tracks: make(map[string]*Track),
	}
}

// Config returns the bank's configuration with defaults applied.
func (b *Bank) Config() Config { return b.cfg }

func (b *Bank) evaluate(c curve) ([]animcurve.Point, error) {
	key := c.key()
	if v, ok := b.memo.Get(key); ok {
		pts, _ := v.([]animcurve.Point)

		return pts, nil
	}

	pts, err := c.evaluate()
	if err != nil {
		return nil, err
	}

	b.memo.Set(key, pts, cache.DefaultExpiration)

	return pts, nil
}

// Add adds t to the bank. A track belongs to at most one bank at a time.
func (b *Bank) Add(t *Track) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.tracks[t.Name()]; ok {
		return fmt.Errorf("%w: track %q", ErrExists, t.Name())
	}

	t.attach(b.cfg.Depth, b.evaluate)
	b.tracks[t.Name()] = t

	return nil
}

// Remove removes the named track from the bank and returns it.
func (b *Bank) Remove(name string) (*Track, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tracks[name]
	if !ok {
		return nil, fmt.Errorf("%w: track %q", ErrNotFound, name)
	}

	delete(b.tracks, name)
	t.detach()

	return t, nil
}

func (b *Bank) Track(name string) (*Track, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	t, ok := b.tracks[name]
	if !ok {
		return nil, fmt.Errorf("%w: track %q", ErrNotFound, name)
	}

	return t, nil
}

// Names returns the names of all tracks in sorted order.
func (b *Bank) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.tracks))
	for name := range b.tracks {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Tracks returns all tracks ordered by name.
func (b *Bank) Tracks() []*Track {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tracks := make([]*Track, 0, len(b.tracks))
	for _, t := range b.tracks {
		tracks = append(tracks, t)
	}

	slices.SortFunc(tracks, func(x, y *Track) int {
		return cmp.Compare(x.Name(), y.Name())
	})

	return tracks
}

// EvaluateAll evaluates every dirty track, at most Config.Workers at a time.
// It stops starting new evaluations once ctx is done or a track fails, and
// returns the first error.
func (b *Bank) EvaluateAll(ctx context.Context) error {
	var dirty []*Track

	for _, t := range b.Tracks() {
		if t.Dirty() {
			dirty = append(dirty, t)
		}
	}

	if len(dirty) == 0 {
		return nil
	}

	logger := b.logger.WithFields(l.StringField(l.RoutineKey, "EvaluateAll"))
	logger.WithFields(l.IntField("tracks", len(dirty))).Debug("evaluate dirty tracks")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Workers)

	for _, t := range dirty {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			pts, _, err := t.evaluate()
			if err != nil {
				logger.WithFields(l.StringField("track", t.Name()), l.ErrorField(err)).Error("evaluate track failed")

				return err
			}

			logger.WithFields(l.StringField("track", t.Name()), l.IntField("points", len(pts))).Debug("track evaluated")

			return nil
		})
	}

	return g.Wait()
}
