package pages

// Navigator tracks which page is currently on screen. Navigation wraps
// in both directions, so the four pages form a cycle. The zero value is
// ready to use and starts on Overview.
type Navigator struct {
	current Page
}

// Current returns the page currently on screen.
func (n *Navigator) Current() Page {
	return n.current
}

// Next advances to the following page, wrapping from QRCode back to
// Overview, and returns the new current page.
func (n *Navigator) Next() Page {
	n.current = (n.current + 1) % pageCount
	return n.current
}

// Prev moves to the preceding page, wrapping from Overview back to
// QRCode, and returns the new current page.
func (n *Navigator) Prev() Page {
	n.current = (n.current + pageCount - 1) % pageCount
	return n.current
}
