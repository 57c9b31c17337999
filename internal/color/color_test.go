package color

import (
	"regexp"
	"testing"
)

var hexRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestForUserDeterministic(t *testing.T) {
	a := ForUser("user_abc123")
	b := ForUser("user_abc123")
	if a != b {
		t.Errorf("ForUser not deterministic: %s vs %s", a, b)
	}
	if !hexRe.MatchString(a) {
		t.Errorf("ForUser returned malformed color %q", a)
	}
}

func TestForPlaylistDeterministic(t *testing.T) {
	a := ForPlaylist("pl_xyz789")
	b := ForPlaylist("pl_xyz789")
	if a != b {
		t.Errorf("ForPlaylist not deterministic: %s vs %s", a, b)
	}
	if !hexRe.MatchString(a) {
		t.Errorf("ForPlaylist returned malformed color %q", a)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	// Not guaranteed in general, but these seeds hash to different hues.
	if ForUser("user_one") == ForUser("user_two_longer") {
		t.Error("expected different colors for different users")
	}
}
