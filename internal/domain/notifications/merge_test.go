package notifications

import (
	"testing"
	"time"
)

func TestMerge_ReadFlagSurvivesRegeneration(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	fresh := []Notification{
		{ID: "today-e1", EventID: "e1", Time: now},
		{ID: "tomorrow-e2", EventID: "e2", Time: now.Add(-4 * time.Hour)},
	}
	persisted := []Notification{
		{ID: "today-e1", EventID: "e1", Read: true, Time: now.Add(-24 * time.Hour)},
	}

	got := Merge(fresh, persisted)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if !got[0].Read {
		t.Fatalf("read flag should carry over to the regenerated notification")
	}
	// El resto viene de la derivada fresca, no de la persistida
	if !got[0].Time.Equal(now) {
		t.Fatalf("fresh fields should win, got time %v", got[0].Time)
	}
	if got[1].Read {
		t.Fatalf("tomorrow-e2 was never read")
	}
}

func TestMerge_CustomsAlwaysKept(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	fresh := []Notification{
		{ID: "today-e1", EventID: "e1", Time: now},
	}
	persisted := []Notification{
		{ID: "custom-abc", Title: "Pesar a Bella", Read: true, Time: now.Add(2 * time.Hour)},
	}

	got := Merge(fresh, persisted)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	// La personalizada es más reciente, va primero
	if got[0].ID != "custom-abc" || !got[0].Read {
		t.Fatalf("custom notification should be kept as-is, got %+v", got[0])
	}
}

func TestMerge_StaleDerivedDropped(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	persisted := []Notification{
		{ID: "today-e9", EventID: "e9", Time: now.Add(-48 * time.Hour)},
	}

	got := Merge(nil, persisted)
	if len(got) != 0 {
		t.Fatalf("stale derived notifications should be dropped, got %+v", got)
	}
}
