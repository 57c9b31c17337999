package domain

import (
	"testing"
	"time"
)

func TestRecordOpen(t *testing.T) {
	a := NewPlaylistActivity("usr-1", "pl-1")
	if a.OpenCount != 0 {
		t.Fatalf("new activity should start at 0, got %d", a.OpenCount)
	}

	var last time.Time
	for i := 1; i <= 3; i++ {
		last = time.Now().UTC()
		a.RecordOpen(last)
		if a.OpenCount != i {
			t.Errorf("after open %d: count = %d", i, a.OpenCount)
		}
	}
	if !a.LastOpened.Equal(last) {
		t.Errorf("LastOpened = %v, want timestamp of final open %v", a.LastOpened, last)
	}
}
