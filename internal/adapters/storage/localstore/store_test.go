package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/notifications"
)

func TestEventRepo_SeedsAndPersists(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	repo := NewEventRepo(Open(dir, nil), now)
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 10 {
		t.Fatalf("expected the 10 seeded events, got %d", len(list))
	}

	created := events.CalendarEvent{
		ID:    "test-1",
		PetID: 1,
		Title: "Banho e tosa",
		Type:  events.TypeConsulta,
		Date:  now.AddDate(0, 0, 3),
		Time:  "10:00",
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Reabrir el directorio: el snapshot sobrevive, sin resembrar
	repo2 := NewEventRepo(Open(dir, nil), now.AddDate(0, 0, 1))
	list, err = repo2.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 11 {
		t.Fatalf("expected 11 events after reopen, got %d", len(list))
	}
	got, err := repo2.GetByID(ctx, "test-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != created.Title || !got.Date.Equal(created.Date) {
		t.Fatalf("event did not round-trip: %+v", got)
	}
}

func TestEventRepo_CorruptSnapshotReseeds(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	// diskv guarda cada clave como un archivo con su nombre
	if err := os.WriteFile(filepath.Join(dir, keyEvents), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	repo := NewEventRepo(Open(dir, nil), now)
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 10 {
		t.Fatalf("expected reseeded events, got %d", len(list))
	}
}

func TestNotificationRepo_EmptyWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewNotificationRepo(Open(dir, nil))
	list, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(list))
	}

	saved := []notifications.Notification{
		{ID: "custom-1", PetID: 1, Title: "Pesar a Bella", Time: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)},
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	repo2 := NewNotificationRepo(Open(dir, nil))
	list, err = repo2.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 1 || list[0].ID != "custom-1" {
		t.Fatalf("notification snapshot did not round-trip: %+v", list)
	}
}

func TestPetRepo_SeedsAndKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewPetRepo(Open(dir, nil))
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected the 3 seeded pets, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].ID < list[i-1].ID {
			t.Fatalf("pets out of order: %+v", list)
		}
	}
	if list[0].Name != "Bella" || list[2].Name != "Thor" {
		t.Fatalf("unexpected seed %+v", list)
	}
}
