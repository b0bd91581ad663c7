package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

// DraftKey is the fixed storage key of the editor draft.
const DraftKey = "astro_blog_editor_draft"

// DraftState is the outcome of looking for a draft when the editor opens.
type DraftState string

const (
	NoDraft         DraftState = "none"
	MatchingDraft   DraftState = "matching"
	MismatchedDraft DraftState = "mismatched"
)

// DraftCheck carries the state and, when matching, the draft to offer.
type DraftCheck struct {
	State DraftState    `json:"state"`
	Draft *domain.Draft `json:"draft,omitempty"`
}

// PostLookup tells whether a post id is already stored.
type PostLookup func(ctx context.Context, id string) (bool, error)

// DraftService persists the single in-progress editor draft.
type DraftService struct {
	store     ports.KeyValueStore
	exists    PostLookup
	logger    *slog.Logger
	autosaver *Autosaver

	// writeMu orders Put and Delete; epoch counts discards so that a snapshot
	// taken before a discard is never written after it.
	writeMu sync.Mutex
	epoch   atomic.Uint64
}

// NewDraftService wires the key-value store; exists is used to tell drafts of
// new posts from drafts of stored ones.
func NewDraftService(store ports.KeyValueStore, exists PostLookup, log *slog.Logger) *DraftService {
	return &DraftService{store: store, exists: exists, logger: orDiscard(log)}
}

// Load returns the stored draft, if any.
func (d *DraftService) Load(ctx context.Context) (domain.Draft, bool, error) {
	raw, ok, err := d.store.Get(ctx, DraftKey)
	if err != nil {
		return domain.Draft{}, false, fmt.Errorf("load draft: %w", err)
	}
	if !ok {
		return domain.Draft{}, false, nil
	}

	var draft domain.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		d.logger.Warn("discarding unreadable draft", "error", err)
		return domain.Draft{}, false, nil
	}
	return draft, true, nil
}

// Check decides whether the stored draft belongs to the post being opened.
// editingID is empty when a new post is being created.
func (d *DraftService) Check(ctx context.Context, editingID string) (DraftCheck, error) {
	draft, ok, err := d.Load(ctx)
	if err != nil {
		return DraftCheck{}, err
	}
	if !ok {
		return DraftCheck{State: NoDraft}, nil
	}

	matching := false
	if editingID != "" {
		matching = draft.ID == editingID
	} else if draft.ID != "" {
		stored := false
		if d.exists != nil {
			if stored, err = d.exists(ctx, draft.ID); err != nil {
				return DraftCheck{}, fmt.Errorf("check draft owner: %w", err)
			}
		}
		matching = !stored
	}

	if !matching {
		return DraftCheck{State: MismatchedDraft}, nil
	}
	return DraftCheck{State: MatchingDraft, Draft: &draft}, nil
}

// Decline discards a matching draft the editor chose not to restore.
func (d *DraftService) Decline(ctx context.Context) error {
	return d.Discard(ctx)
}

// Save writes the draft if it carries a title, excerpt or content.
func (d *DraftService) Save(ctx context.Context, draft domain.Draft) (bool, error) {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	return d.put(ctx, draft)
}

// saveAt writes the draft unless a discard happened after epoch was read.
func (d *DraftService) saveAt(ctx context.Context, draft domain.Draft, epoch uint64) (bool, error) {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()
	if d.epoch.Load() != epoch {
		return false, nil
	}
	return d.put(ctx, draft)
}

func (d *DraftService) put(ctx context.Context, draft domain.Draft) (bool, error) {
	if !draft.HasContent() {
		return false, nil
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return false, fmt.Errorf("marshal draft: %w", err)
	}
	if err := d.store.Put(ctx, DraftKey, raw); err != nil {
		return false, fmt.Errorf("store draft: %w", err)
	}
	return true, nil
}

// Discard deletes the stored draft along with any snapshot still waiting in
// the autosaver.
func (d *DraftService) Discard(ctx context.Context) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if d.autosaver != nil {
		d.autosaver.Cancel()
	}
	d.epoch.Add(1)
	if err := d.store.Delete(ctx, DraftKey); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// Autosaver debounces editor snapshots: only the latest snapshot is written,
// once no new snapshot has arrived for the configured delay.
type Autosaver struct {
	drafts *DraftService
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	pending *domain.Draft
	timer   *time.Timer
	gen     uint64
	closed  bool
}

// NewAutosaver builds a debouncer in front of the draft service. Discarding
// the draft through the service also drops the pending snapshot.
func NewAutosaver(drafts *DraftService, delay time.Duration, log *slog.Logger) *Autosaver {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	a := &Autosaver{drafts: drafts, delay: delay, logger: orDiscard(log)}
	drafts.autosaver = a
	return a
}

// Touch records a new snapshot and restarts the quiet-period timer.
func (a *Autosaver) Touch(draft domain.Draft) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	a.pending = &draft
	a.gen++
	gen := a.gen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() {
		if err := a.flush(context.Background(), gen); err != nil {
			a.logger.Error("autosave draft", "error", err)
		}
	})
}

// Pending reports whether a snapshot is waiting to be written.
func (a *Autosaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Flush writes the pending snapshot now.
func (a *Autosaver) Flush(ctx context.Context) error {
	return a.flush(ctx, 0)
}

// flush writes the pending snapshot; a non-zero gen only matches the timer
// armed by that touch, so stale timers do nothing.
func (a *Autosaver) flush(ctx context.Context, gen uint64) error {
	a.mu.Lock()
	if gen != 0 && gen != a.gen {
		a.mu.Unlock()
		return nil
	}
	draft := a.pending
	epoch := a.drafts.epoch.Load()
	a.pending = nil
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	if draft == nil {
		return nil
	}
	_, err := a.drafts.saveAt(ctx, *draft, epoch)
	return err
}

// Cancel drops the pending snapshot without writing it.
func (a *Autosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = nil
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Close flushes the pending snapshot and rejects further touches.
func (a *Autosaver) Close(ctx context.Context) error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	return a.Flush(ctx)
}
