package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"

	"badgeview/internal/feed"
	"badgeview/internal/pages"
	"badgeview/internal/snapshot"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236")).
			Bold(true)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	bodyStyle   = lipgloss.NewStyle().Padding(1, 2)
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	staleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

const maxActivityRows = 5

// View renders the current page from the snapshot store. Get never
// fails, so there is always something to draw, including on first boot
// with zero successful fetches.
func (m Model) View() string {
	if !m.ready {
		return "starting badge..."
	}

	page := m.nav.Current()
	snap := m.store.Get(page)
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}

	sections := []string{
		m.renderHeader(page),
		bodyStyle.Render(renderBody(snap, now)),
		m.renderFooter(snap, now),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader draws the badge's top bar: branding on the left, the
// page title centered, and the page indicator on the right.
func (m Model) renderHeader(page pages.Page) string {
	indicator := fmt.Sprintf("%d/%d", int(page)+1, len(pages.All()))
	return headerStyle.Width(m.width).Render(spread(" GitHub", page.Title(), indicator+" ", m.width))
}

func (m Model) renderFooter(snap snapshot.Snapshot, now time.Time) string {
	status := originLabel(snap, now)
	if m.syncing {
		status += "  " + dimStyle.Render("syncing...")
	}
	return footerStyle.Render(" "+status) + "\n" + m.help.View(m.keys)
}

// originLabel surfaces the snapshot's provenance so the user can tell
// stale data from fresh; its absence never means absence of content.
func originLabel(snap snapshot.Snapshot, now time.Time) string {
	switch snap.Origin {
	case snapshot.OriginLive:
		return liveStyle.Render("live") + dimStyle.Render(" · updated "+formatAge(snap.Age(now)))
	case snapshot.OriginCache:
		return staleStyle.Render("cached " + formatAge(snap.Age(now)))
	default:
		return staleStyle.Render("no data cached")
	}
}

func renderBody(snap snapshot.Snapshot, now time.Time) string {
	switch snap.Page {
	case pages.Overview:
		return renderOverview(snap.Payload.Profile)
	case pages.Statistics:
		return renderStats(snap.Payload.Stats)
	case pages.Activity:
		return renderActivity(snap.Payload.Activity, now)
	case pages.QRCode:
		return renderQR(snap.Payload.QR)
	}
	return ""
}

func renderOverview(p *feed.Profile) string {
	if p == nil {
		return dimStyle.Render("No profile data")
	}
	name := p.DisplayName
	if name == "" {
		name = p.Username
	}
	lines := []string{
		nameStyle.Render(name),
		dimStyle.Render("@" + p.Username),
		"",
		fmt.Sprintf("Repos %d   Followers %d   Following %d", p.PublicRepos, p.Followers, p.Following),
	}
	return strings.Join(lines, "\n")
}

func renderStats(s *feed.Stats) string {
	if s == nil {
		return dimStyle.Render("No stats available")
	}
	lines := []string{
		fmt.Sprintf("Stars %d   Forks %d", s.TotalStars, s.TotalForks),
	}
	if s.MostStarred != nil {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("Most starred: %s (%d)", s.MostStarred.Name, s.MostStarred.Stars)))
	}
	if len(s.TopLanguages) > 0 {
		lines = append(lines, "", nameStyle.Render("Top languages"))
		for _, lang := range s.TopLanguages {
			lines = append(lines, fmt.Sprintf("%-12s %s %4.1f%%", lang.Name, barStyle.Render(languageBar(lang.Percentage, 20)), lang.Percentage))
		}
	}
	return strings.Join(lines, "\n")
}

func renderActivity(a *feed.Activity, now time.Time) string {
	if a == nil || len(a.Events) == 0 {
		return dimStyle.Render("No recent activity")
	}
	lines := []string{nameStyle.Render("Recent events"), ""}
	for i, event := range a.Events {
		if i >= maxActivityRows {
			break
		}
		age := ""
		if ts := event.ParsedTimestamp(); !ts.IsZero() {
			age = dimStyle.Render("  " + formatAge(now.Sub(ts)) + " ago")
		}
		lines = append(lines, fmt.Sprintf("• %s  %s%s", eventLabel(event.Type), event.Repo, age))
	}
	return strings.Join(lines, "\n")
}

func renderQR(q *feed.QRTarget) string {
	if q == nil || q.ProfileURL == "" {
		return dimStyle.Render("No QR target")
	}
	var buf strings.Builder
	qrterminal.GenerateWithConfig(q.ProfileURL, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &buf,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		QuietZone:      1,
	})
	url := strings.TrimPrefix(q.ProfileURL, "https://")
	return buf.String() + "\n" + dimStyle.Render(url)
}

// eventLabel shortens GitHub event type names for the narrow display.
func eventLabel(eventType string) string {
	return strings.TrimSuffix(eventType, "Event")
}

// languageBar renders a fixed-width proportion bar.
func languageBar(percentage float64, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := int(percentage/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// formatAge renders a duration in the coarsest sensible unit.
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}

// spread lays out left, center, and right segments across a line.
func spread(left, center, right string, width int) string {
	used := lipgloss.Width(left) + lipgloss.Width(center) + lipgloss.Width(right)
	if width <= used {
		return left + " " + center + " " + right
	}
	gap := width - used
	leftGap := gap / 2
	rightGap := gap - leftGap
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
