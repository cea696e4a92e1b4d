package pages

import "testing"

func TestNavigator_NextWrapsOverAllPages(t *testing.T) {
	var nav Navigator
	if nav.Current() != Overview {
		t.Fatalf("initial page = %v, want Overview", nav.Current())
	}

	want := []Page{Statistics, Activity, QRCode, Overview}
	for i, expected := range want {
		got := nav.Next()
		if got != expected {
			t.Fatalf("Next() #%d = %v, want %v", i+1, got, expected)
		}
	}
	if nav.Current() != Overview {
		t.Fatalf("after 4 Next() current = %v, want Overview", nav.Current())
	}
}

func TestNavigator_PrevWrapsBackward(t *testing.T) {
	var nav Navigator
	if got := nav.Prev(); got != QRCode {
		t.Fatalf("Prev() from Overview = %v, want QRCode", got)
	}

	want := []Page{Activity, Statistics, Overview}
	for i, expected := range want {
		got := nav.Prev()
		if got != expected {
			t.Fatalf("Prev() #%d = %v, want %v", i+2, got, expected)
		}
	}
}

func TestPage_TextRoundTrip(t *testing.T) {
	for _, page := range All() {
		text, err := page.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) returned error: %v", page, err)
		}
		var decoded Page
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) returned error: %v", text, err)
		}
		if decoded != page {
			t.Fatalf("round trip %v -> %q -> %v", page, text, decoded)
		}
	}
}

func TestPage_UnmarshalUnknownFails(t *testing.T) {
	var page Page
	if err := page.UnmarshalText([]byte("settings")); err == nil {
		t.Fatal("UnmarshalText accepted unknown page")
	}
}

func TestPage_InvalidMarshalFails(t *testing.T) {
	if _, err := Page(42).MarshalText(); err == nil {
		t.Fatal("MarshalText accepted invalid page")
	}
}
