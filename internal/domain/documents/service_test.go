package documents

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeRepo guarda los documentos en un slice, suficiente para el servicio.
type fakeRepo struct {
	docs []PetDocument
}

var errNotFound = errors.New("not found")

func (r *fakeRepo) Create(_ context.Context, d PetDocument) error {
	r.docs = append(r.docs, d)
	return nil
}

func (r *fakeRepo) Update(_ context.Context, d PetDocument) error {
	for i := range r.docs {
		if r.docs[i].ID == d.ID {
			r.docs[i] = d
			return nil
		}
	}
	return errNotFound
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (PetDocument, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return PetDocument{}, errNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]PetDocument, error) {
	return append([]PetDocument(nil), r.docs...), nil
}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestAdd_DefaultsAndNormalization(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	svc := newTestService(repo, now)

	got, err := svc.Add(context.Background(), AddInput{
		PetID:    1,
		Name:     "  Carteira de vacinação  ",
		FileType: "PDF",
		FileURL:  "/docs/carteira.pdf",
		FileSize: 245760,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got.ID == "" || got.ID[:4] != "doc-" {
		t.Fatalf("expected doc- prefixed id, got %q", got.ID)
	}
	if got.Name != "Carteira de vacinação" {
		t.Fatalf("name not trimmed: %q", got.Name)
	}
	if got.FileType != "pdf" {
		t.Fatalf("file type not lowered: %q", got.FileType)
	}
	if got.Category != CategoryOther {
		t.Fatalf("expected default category %s, got %s", CategoryOther, got.Category)
	}
	if !got.UploadDate.Equal(now) {
		t.Fatalf("expected upload date %v, got %v", now, got.UploadDate)
	}
}

func TestAdd_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	cases := []AddInput{
		{Name: "sem pet", FileURL: "/x.pdf"},
		{PetID: 1, FileURL: "/x.pdf"},
		{PetID: 1, Name: "sem url"},
		{PetID: 1, Name: "tamanho", FileURL: "/x.pdf", FileSize: -1},
		{PetID: 1, Name: "categoria", FileURL: "/x.pdf", Category: "bogus"},
	}
	for i, in := range cases {
		if _, err := svc.Add(ctx, in); err != ErrInvalidInput {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestToggleFavorite(t *testing.T) {
	repo := &fakeRepo{docs: []PetDocument{{ID: "doc-1", PetID: 1}}}
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.ToggleFavorite(ctx, "doc-1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !got.IsFavorite {
		t.Fatalf("expected favorite after first toggle")
	}
	got, err = svc.ToggleFavorite(ctx, "doc-1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if got.IsFavorite {
		t.Fatalf("expected not favorite after second toggle")
	}
}

func TestListByPet_FilterAndOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{docs: []PetDocument{
		{ID: "a", PetID: 1, Category: CategoryVaccines, UploadDate: base},
		{ID: "b", PetID: 1, Category: CategoryExams, UploadDate: base.AddDate(0, 0, 5)},
		{ID: "c", PetID: 2, Category: CategoryVaccines, UploadDate: base.AddDate(0, 0, 2)},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.ListByPet(ctx, 1, "")
	if err != nil {
		t.Fatalf("ListByPet: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected [b a] newest first, got %+v", got)
	}

	got, err = svc.ListByPet(ctx, 0, CategoryVaccines)
	if err != nil {
		t.Fatalf("ListByPet: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Fatalf("expected vaccine docs [c a], got %+v", got)
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{512, "512 bytes"},
		{1024, "1.0 KB"},
		{245760, "240.0 KB"},
		{1048576, "1.0 MB"},
		{1835008, "1.8 MB"},
	}
	for _, c := range cases {
		if got := FormatFileSize(c.in); got != c.want {
			t.Fatalf("FormatFileSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
