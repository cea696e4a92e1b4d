package feed

import (
	"time"

	"badgeview/internal/pages"
)

// Profile mirrors the profile document published for the Overview page.
type Profile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	ProfileURL  string `json:"html_url"`
	UpdatedAt   string `json:"updated_at"`
}

// ParsedUpdatedAt returns the document timestamp as time.Time when possible.
func (p Profile) ParsedUpdatedAt() time.Time {
	return ParseTime(p.UpdatedAt)
}

// LanguageShare is one entry of a profile's top-language breakdown.
type LanguageShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// RepoRef names a repository together with its star count.
type RepoRef struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// Stats mirrors the statistics document for the Statistics page.
type Stats struct {
	TotalStars   int             `json:"total_stars"`
	TotalForks   int             `json:"total_forks"`
	TopLanguages []LanguageShare `json:"top_languages"`
	MostStarred  *RepoRef        `json:"most_starred,omitempty"`
	UpdatedAt    string          `json:"updated_at"`
}

// Event is a single public activity entry.
type Event struct {
	Type      string `json:"type"`
	Repo      string `json:"repo"`
	Timestamp string `json:"timestamp"`
}

// ParsedTimestamp returns the event time as time.Time when possible.
func (e Event) ParsedTimestamp() time.Time {
	return ParseTime(e.Timestamp)
}

// Activity mirrors the activity document for the Activity page.
type Activity struct {
	Events    []Event `json:"events"`
	UpdatedAt string  `json:"updated_at"`
}

// QRTarget mirrors the QR document: the URL the badge encodes.
type QRTarget struct {
	ProfileURL string `json:"profile_url"`
}

// Compact mirrors the combined document aggregating minimal fields for
// all pages. The producer publishes it alongside the per-page documents
// so the badge can refresh everything with a single request.
type Compact struct {
	Profile   *Profile  `json:"profile"`
	Stats     *Stats    `json:"stats"`
	Activity  *Activity `json:"activity"`
	UpdatedAt string    `json:"updated_at"`
}

// Payload carries the content for exactly one page. Which field is set
// depends on the page the payload belongs to; Validate enforces the
// pairing and the document's required fields.
type Payload struct {
	Profile  *Profile  `json:"profile,omitempty"`
	Stats    *Stats    `json:"stats,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
	QR       *QRTarget `json:"qr,omitempty"`
}

// Empty reports whether the payload carries no content at all.
func (p Payload) Empty() bool {
	return p.Profile == nil && p.Stats == nil && p.Activity == nil && p.QR == nil
}

// Validate checks that the payload carries the document the page needs
// and that the document's required fields are present. A failure means
// the fetched document was malformed for that page only.
func (p Payload) Validate(page pages.Page) error {
	switch page {
	case pages.Overview:
		if p.Profile == nil {
			return malformed(page, "missing profile document")
		}
		if p.Profile.Username == "" {
			return malformed(page, "profile missing username")
		}
		if p.Profile.UpdatedAt == "" {
			return malformed(page, "profile missing updated_at")
		}
	case pages.Statistics:
		if p.Stats == nil {
			return malformed(page, "missing stats document")
		}
		if p.Stats.TopLanguages == nil {
			return malformed(page, "stats missing top_languages")
		}
		if p.Stats.UpdatedAt == "" {
			return malformed(page, "stats missing updated_at")
		}
	case pages.Activity:
		if p.Activity == nil {
			return malformed(page, "missing activity document")
		}
		if p.Activity.Events == nil {
			return malformed(page, "activity missing events")
		}
		if p.Activity.UpdatedAt == "" {
			return malformed(page, "activity missing updated_at")
		}
	case pages.QRCode:
		if p.QR == nil {
			return malformed(page, "missing qr document")
		}
		if p.QR.ProfileURL == "" {
			return malformed(page, "qr missing profile_url")
		}
	default:
		return malformed(page, "unknown page")
	}
	return nil
}

// ParseTime parses the timestamps the producer emits. Invalid or empty
// values return the zero time.
func ParseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
