package events

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh int) time.Time {
	return time.Date(y, m, d, hh, 0, 0, 0, time.UTC)
}

func TestForDate_IgnoresTimeOfDay(t *testing.T) {
	evts := []CalendarEvent{
		{ID: "a", PetID: 1, Date: date(2026, 8, 28, 23)},
		{ID: "b", PetID: 2, Date: date(2026, 8, 28, 0)},
		{ID: "c", PetID: 1, Date: date(2026, 8, 29, 0)},
	}

	got := ForDate(evts, date(2026, 8, 28, 12), 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 events for the day, got %d", len(got))
	}

	// petID filtra
	got = ForDate(evts, date(2026, 8, 28, 12), 2)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only event b for pet 2, got %+v", got)
	}
}

func TestUpcomingForPet_SortsAndFilters(t *testing.T) {
	now := date(2026, 8, 28, 10)
	evts := []CalendarEvent{
		{ID: "past", PetID: 1, Date: now.AddDate(0, 0, -1)},
		{ID: "far", PetID: 1, Date: now.AddDate(0, 0, 45)},
		{ID: "done", PetID: 1, Date: now.AddDate(0, 0, 2), Completed: true},
		{ID: "other", PetID: 2, Date: now.AddDate(0, 0, 2)},
		{ID: "later", PetID: 1, Date: now.AddDate(0, 0, 10)},
		{ID: "soon", PetID: 1, Date: now.AddDate(0, 0, 1)},
	}

	got := UpcomingForPet(evts, 1, 30, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d: %+v", len(got), got)
	}
	if got[0].ID != "soon" || got[1].ID != "later" {
		t.Fatalf("expected [soon later], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestDueToday_OnlyTodayWithReminder(t *testing.T) {
	now := date(2026, 8, 28, 10)
	evts := []CalendarEvent{
		{ID: "today", PetID: 1, Date: now, Reminder: true},
		{ID: "today-no-reminder", PetID: 1, Date: now},
		{ID: "today-done", PetID: 1, Date: now, Reminder: true, Completed: true},
		{ID: "tomorrow", PetID: 1, Date: now.AddDate(0, 0, 1), Reminder: true},
	}

	got := DueToday(evts, now)
	if len(got) != 1 || got[0].ID != "today" {
		t.Fatalf("expected only event today, got %+v", got)
	}
}

func TestGroupByMonth_OrdersGroupsAndEvents(t *testing.T) {
	evts := []CalendarEvent{
		{ID: "c", Date: date(2027, 1, 5, 0)},
		{ID: "a", Date: date(2026, 12, 20, 0)},
		{ID: "b", Date: date(2026, 12, 2, 0)},
	}

	groups := GroupByMonth(evts)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Year != 2026 || groups[0].Month != time.December {
		t.Fatalf("expected first group 2026-12, got %d-%d", groups[0].Year, groups[0].Month)
	}
	if groups[1].Year != 2027 || groups[1].Month != time.January {
		t.Fatalf("expected second group 2027-01, got %d-%d", groups[1].Year, groups[1].Month)
	}
	// Dentro del grupo, ascendente por fecha
	if groups[0].Events[0].ID != "b" || groups[0].Events[1].ID != "a" {
		t.Fatalf("expected [b a] inside december, got [%s %s]", groups[0].Events[0].ID, groups[0].Events[1].ID)
	}
}

func TestSeed_DatesRelativeToNow(t *testing.T) {
	now := date(2026, 8, 28, 9)
	seeded := Seed(now)
	if len(seeded) != 10 {
		t.Fatalf("expected 10 seeded events, got %d", len(seeded))
	}
	for _, e := range seeded {
		if !e.Type.Valid() {
			t.Fatalf("seeded event %s has invalid type %q", e.ID, e.Type)
		}
	}

	// El evento 4 es hoy (el antibiótico de Thor)
	due := DueToday(seeded, now)
	if len(due) != 1 || due[0].ID != "4" {
		t.Fatalf("expected seeded event 4 due today, got %+v", due)
	}
}
