package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"badgeview/internal/feed"
	"badgeview/internal/pages"
)

// Origin records a snapshot's provenance.
type Origin int

const (
	// OriginDefault marks the embedded placeholder used when a page has
	// never been fetched successfully.
	OriginDefault Origin = iota
	// OriginCache marks data fetched in an earlier session and reloaded
	// from disk.
	OriginCache
	// OriginLive marks data accepted from a fetch this session.
	OriginLive
)

func (o Origin) String() string {
	switch o {
	case OriginLive:
		return "live"
	case OriginCache:
		return "cache"
	}
	return "default"
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Origin) UnmarshalText(text []byte) error {
	switch string(text) {
	case "live":
		*o = OriginLive
	case "cache":
		*o = OriginCache
	case "default":
		*o = OriginDefault
	default:
		return fmt.Errorf("snapshot: unknown origin %q", string(text))
	}
	return nil
}

// Snapshot is the accepted content for one page plus its provenance.
type Snapshot struct {
	Page      pages.Page   `json:"page"`
	Payload   feed.Payload `json:"payload"`
	FetchedAt time.Time    `json:"fetched_at"`
	Origin    Origin       `json:"origin"`
}

// Age returns how long ago the snapshot was fetched. Default-origin
// snapshots have no fetch time and report zero.
func (s Snapshot) Age(now time.Time) time.Duration {
	if s.FetchedAt.IsZero() {
		return 0
	}
	return now.Sub(s.FetchedAt)
}

// Store holds the most recently accepted payload per page and persists
// each one to its own file so the badge survives power cycles. The
// reconciler is the only writer; the UI reads through Get, which never
// fails.
type Store struct {
	dir      string
	username string
	snaps    map[pages.Page]Snapshot
}

// Open creates the data directory if needed and reloads any persisted
// snapshots. A page whose file is unreadable or malformed degrades to
// its embedded default; corruption never aborts startup. Snapshots
// reloaded from disk are demoted from live to cache, since they were
// fetched in an earlier session.
func Open(dir, username string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		dir:      dir,
		username: username,
		snaps:    make(map[pages.Page]Snapshot, len(pages.All())),
	}
	for _, page := range pages.All() {
		snap, err := s.readPage(page)
		if err != nil {
			continue
		}
		if snap.Origin == OriginLive {
			snap.Origin = OriginCache
		}
		s.snaps[page] = snap
	}
	return s, nil
}

// Get returns the page's current snapshot. It never fails: a page with
// no accepted payload resolves to its default-origin placeholder, so
// the render boundary always has content.
func (s *Store) Get(page pages.Page) Snapshot {
	if snap, ok := s.snaps[page]; ok && !snap.Payload.Empty() {
		return snap
	}
	return s.Default(page)
}

// Put accepts a payload for the page, stamps the fetch time, and
// persists the snapshot. The in-memory snapshot is updated even when
// persistence fails, so the current session keeps the fresh data; the
// error is returned for logging.
func (s *Store) Put(page pages.Page, payload feed.Payload, origin Origin) error {
	snap := Snapshot{
		Page:      page,
		Payload:   payload,
		FetchedAt: time.Now(),
		Origin:    origin,
	}
	s.snaps[page] = snap
	return s.writePage(snap)
}

// Default returns the page's embedded placeholder snapshot.
func (s *Store) Default(page pages.Page) Snapshot {
	return Snapshot{
		Page:    page,
		Payload: defaultPayload(page, s.username),
		Origin:  OriginDefault,
	}
}

func (s *Store) pagePath(page pages.Page) string {
	return filepath.Join(s.dir, page.String()+".json")
}

func (s *Store) readPage(page pages.Page) (Snapshot, error) {
	data, err := os.ReadFile(s.pagePath(page))
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode %s snapshot: %w", page, err)
	}
	if snap.Page != page || snap.Payload.Empty() {
		return Snapshot{}, fmt.Errorf("%s snapshot content mismatch", page)
	}
	return snap, nil
}

// writePage persists via write-then-rename so a power loss mid-write
// leaves either the old file or the new one, never a torn snapshot.
func (s *Store) writePage(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", snap.Page, err)
	}
	path := s.pagePath(snap.Page)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s snapshot: %w", snap.Page, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s snapshot: %w", snap.Page, err)
	}
	return nil
}
