package snapshot

import (
	"badgeview/internal/feed"
	"badgeview/internal/pages"
)

// defaultPayload builds the embedded placeholder content for a page.
// Placeholders are never empty: the first boot with zero connectivity
// still renders a name, zeroed stats, and a scannable QR code pointing
// at the fallback profile URL.
func defaultPayload(page pages.Page, username string) feed.Payload {
	name := username
	if name == "" {
		name = "github"
	}
	profileURL := "https://github.com/" + name

	switch page {
	case pages.Overview:
		return feed.Payload{Profile: &feed.Profile{
			Username:    name,
			DisplayName: "GitHub Badge",
			ProfileURL:  profileURL,
		}}
	case pages.Statistics:
		return feed.Payload{Stats: &feed.Stats{
			TopLanguages: []feed.LanguageShare{},
		}}
	case pages.Activity:
		return feed.Payload{Activity: &feed.Activity{
			Events: []feed.Event{},
		}}
	case pages.QRCode:
		return feed.Payload{QR: &feed.QRTarget{ProfileURL: profileURL}}
	}
	return feed.Payload{}
}
