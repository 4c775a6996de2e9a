package reading

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Hello   World  ", "Hello World"},
		{"already clean", "already clean"},
		{"\ttabs\nand\r\nnewlines", "tabs and newlines"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeText(c.in); got != c.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://Example.com/Path", "https://example.com/Path"},
		{"https://example.com", "https://example.com/"},
		{"HTTPS://EXAMPLE.COM/A?b=c", "https://example.com/A?b=c"},
		{" https://example.com/x ", "https://example.com/x"},
		{"not a url", ""},
		{"/relative/path", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeURL(c.in); got != c.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeISO(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-01-02T03:04:05.000Z", "2024-01-02T03:04:05.000Z"},
		{"2024-01-02T03:04:05Z", "2024-01-02T03:04:05.000Z"},
		{"2024-01-02T03:04:05+02:00", "2024-01-02T01:04:05.000Z"},
		{"2024-01-02", "2024-01-02T00:00:00.000Z"},
		{"garbage", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeISO(c.in); got != c.want {
			t.Errorf("NormalizeISO(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateTitle_Boundary(t *testing.T) {
	long := strings.Repeat("a", 85)
	want := strings.Repeat("a", 80) + "…"
	if got := TruncateTitle(long); got != want {
		t.Errorf("85-rune title: got %q, want %q", got, want)
	}

	exact := strings.Repeat("a", 84)
	if got := TruncateTitle(exact); got != exact {
		t.Errorf("84-rune title changed: got %q", got)
	}
}

func TestTruncateTitle_TrimsBeforeEllipsis(t *testing.T) {
	// Rune 80 is a space, which must not survive in front of the ellipsis.
	title := strings.Repeat("b", 79) + " " + strings.Repeat("c", 10)
	want := strings.Repeat("b", 79) + "…"
	if got := TruncateTitle(title); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseTime(t *testing.T) {
	if _, ok := ParseTime("2024-01-02T03:04:05.000Z"); !ok {
		t.Error("expected canonical timestamp to parse")
	}
	if _, ok := ParseTime("nope"); ok {
		t.Error("expected garbage to fail")
	}
}
