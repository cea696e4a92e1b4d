package pages

import "fmt"

// Page identifies one of the badge's display screens.
type Page int

const (
	Overview Page = iota
	Statistics
	Activity
	QRCode
)

const pageCount = 4

// All returns every page in display order.
func All() []Page {
	return []Page{Overview, Statistics, Activity, QRCode}
}

// Valid reports whether p is one of the defined pages.
func (p Page) Valid() bool {
	return p >= Overview && p < pageCount
}

// String returns the page's stable identifier, used for snapshot file
// names and logging.
func (p Page) String() string {
	switch p {
	case Overview:
		return "overview"
	case Statistics:
		return "stats"
	case Activity:
		return "activity"
	case QRCode:
		return "qr"
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Title returns the human-readable header title for the page.
func (p Page) Title() string {
	switch p {
	case Overview:
		return "Overview"
	case Statistics:
		return "Statistics"
	case Activity:
		return "Activity"
	case QRCode:
		return "QR Code"
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler so pages serialize as
// their stable identifiers.
func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("pages: cannot marshal invalid page %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Page) UnmarshalText(text []byte) error {
	switch string(text) {
	case "overview":
		*p = Overview
	case "stats":
		*p = Statistics
	case "activity":
		*p = Activity
	case "qr":
		*p = QRCode
	default:
		return fmt.Errorf("pages: unknown page %q", string(text))
	}
	return nil
}
