package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeview/internal/feed"
	"badgeview/internal/pages"
)

func overviewPayload() feed.Payload {
	return feed.Payload{Profile: &feed.Profile{
		Username:    "octocat",
		DisplayName: "The Octocat",
		Followers:   9001,
		PublicRepos: 8,
		UpdatedAt:   "2026-08-30T12:00:00Z",
	}}
}

func statsPayload() feed.Payload {
	return feed.Payload{Stats: &feed.Stats{
		TotalStars:   120,
		TopLanguages: []feed.LanguageShare{{Name: "Go", Percentage: 61.5}},
		UpdatedAt:    "2026-08-30T12:00:00Z",
	}}
}

func TestStore_GetNeverFailsAndNeverEmpty(t *testing.T) {
	store, err := Open(t.TempDir(), "octocat")
	require.NoError(t, err)

	for _, page := range pages.All() {
		snap := store.Get(page)
		assert.Equal(t, page, snap.Page)
		assert.Equal(t, OriginDefault, snap.Origin)
		assert.False(t, snap.Payload.Empty(), "page %v resolved to empty payload", page)
	}

	qr := store.Get(pages.QRCode)
	require.NotNil(t, qr.Payload.QR)
	assert.Equal(t, "https://github.com/octocat", qr.Payload.QR.ProfileURL)
}

func TestStore_PutStampsAndPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, "octocat")
	require.NoError(t, err)

	before := time.Now()
	require.NoError(t, store.Put(pages.Overview, overviewPayload(), OriginLive))

	snap := store.Get(pages.Overview)
	assert.Equal(t, OriginLive, snap.Origin)
	assert.Equal(t, "octocat", snap.Payload.Profile.Username)
	assert.False(t, snap.FetchedAt.Before(before), "FetchedAt not stamped")

	// No temp file left behind by the write-then-rename.
	_, err = os.Stat(filepath.Join(dir, "overview.json.tmp"))
	assert.True(t, os.IsNotExist(err))

	// A new session reloads the snapshot, demoted from live to cache.
	reopened, err := Open(dir, "octocat")
	require.NoError(t, err)
	reloaded := reopened.Get(pages.Overview)
	assert.Equal(t, OriginCache, reloaded.Origin)
	assert.Equal(t, snap.Payload, reloaded.Payload)
	assert.WithinDuration(t, snap.FetchedAt, reloaded.FetchedAt, time.Second)
}

func TestStore_CorruptionDegradesOnlyThatPage(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, "octocat")
	require.NoError(t, err)
	require.NoError(t, store.Put(pages.Overview, overviewPayload(), OriginLive))
	require.NoError(t, store.Put(pages.Statistics, statsPayload(), OriginLive))

	// Simulate a torn write to the statistics file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stats.json"), []byte(`{"page":"stats","pay`), 0o644))

	reopened, err := Open(dir, "octocat")
	require.NoError(t, err)

	stats := reopened.Get(pages.Statistics)
	assert.Equal(t, OriginDefault, stats.Origin)
	assert.False(t, stats.Payload.Empty())

	overview := reopened.Get(pages.Overview)
	assert.Equal(t, OriginCache, overview.Origin)
	assert.Equal(t, "octocat", overview.Payload.Profile.Username)
}

func TestStore_MismatchedPageFileDegrades(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, "octocat")
	require.NoError(t, err)
	require.NoError(t, store.Put(pages.Overview, overviewPayload(), OriginLive))

	// A snapshot written under the wrong file name is treated as corrupt.
	data, err := os.ReadFile(filepath.Join(dir, "overview.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "activity.json"), data, 0o644))

	reopened, err := Open(dir, "octocat")
	require.NoError(t, err)
	assert.Equal(t, OriginDefault, reopened.Get(pages.Activity).Origin)
}

func TestOrigin_TextRoundTrip(t *testing.T) {
	for _, origin := range []Origin{OriginDefault, OriginCache, OriginLive} {
		text, err := origin.MarshalText()
		require.NoError(t, err)
		var decoded Origin
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, origin, decoded)
	}

	var origin Origin
	assert.Error(t, origin.UnmarshalText([]byte("fresh")))
}

func TestSnapshot_Age(t *testing.T) {
	now := time.Now()
	snap := Snapshot{FetchedAt: now.Add(-5 * time.Minute)}
	assert.Equal(t, 5*time.Minute, snap.Age(now))
	assert.Equal(t, time.Duration(0), Snapshot{}.Age(now))
}
