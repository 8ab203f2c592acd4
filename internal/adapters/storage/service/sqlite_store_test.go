package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"medicare/internal/adapters/storage"
	serviceStore "medicare/internal/adapters/storage/service"
	domain "medicare/internal/domain/service"
)

func openTestStore(t *testing.T) *serviceStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return serviceStore.NewSQLiteStore(db)
}

func seedCatalog(t *testing.T, store *serviceStore.SQLiteStore) {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.Service{
		{ID: "s1", Title: "Dental Care", Icon: "fa-tooth", Price: 80, Category: "Dental", CreatedAt: now},
		{ID: "s2", Title: "Cardiology", Icon: "fa-heart", Price: 120, Category: "Specialist", CreatedAt: now},
		{ID: "s3", Title: "Eye Care", Icon: "fa-eye", Price: 70, Category: "Specialist", CreatedAt: now},
		{ID: "s4", Title: "General Consultation", Icon: "fa-stethoscope", Price: 50, Category: "Consultation", CreatedAt: now},
	}
	for _, svc := range rows {
		if err := store.Save(context.Background(), svc); err != nil {
			t.Fatalf("Save(%s) failed: %v", svc.ID, err)
		}
	}
}

// TestSQLiteStore_SaveAndGet tests round-tripping a service.
func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := openTestStore(t)
	svc := domain.Service{
		ID: "s1", Title: "Dental Care", Description: "**Professional** cleaning",
		Icon: "fa-tooth", Price: 80.50, Category: "Dental",
		CreatedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := store.Save(context.Background(), svc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(context.Background(), "s1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Dental Care" || got.Price != 80.50 || got.Description != "**Professional** cleaning" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

// TestSQLiteStore_List tests ordering by category then title.
func TestSQLiteStore_List(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store)

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	wantOrder := []string{"s4", "s1", "s2", "s3"} // Consultation, Dental, Specialist (Cardiology), Specialist (Eye Care)
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d services, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

// TestSQLiteStore_Categories tests the distinct category query.
func TestSQLiteStore_Categories(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store)

	got, err := store.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	want := []string{"Consultation", "Dental", "Specialist"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d: %v", len(want), len(got), got)
	}
	for i, c := range want {
		if got[i] != c {
			t.Errorf("position %d: expected %s, got %s", i, c, got[i])
		}
	}
}

// TestSQLiteStore_DeleteAndCount tests deletion and counting.
func TestSQLiteStore_DeleteAndCount(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store)

	if n, _ := store.Count(context.Background()); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n, _ := store.Count(context.Background()); n != 3 {
		t.Errorf("Count after delete = %d, want 3", n)
	}
}
