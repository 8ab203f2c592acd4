package projections_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"medicare/internal/adapters/storage"
	appointmentStore "medicare/internal/adapters/storage/appointment"
	contactStore "medicare/internal/adapters/storage/contact"
	reviewStore "medicare/internal/adapters/storage/review"
	serviceStore "medicare/internal/adapters/storage/service"
	"medicare/internal/application/projections"
	"medicare/internal/domain/appointment"
	"medicare/internal/domain/contact"
	"medicare/internal/domain/review"
	"medicare/internal/domain/service"
)

func openTestDeps(t *testing.T) projections.DashboardDeps {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return projections.DashboardDeps{
		ServiceStore:     serviceStore.NewSQLiteStore(db),
		ReviewStore:      reviewStore.NewSQLiteStore(db),
		AppointmentStore: appointmentStore.NewSQLiteStore(db),
		ContactStore:     contactStore.NewSQLiteStore(db),
	}
}

// TestQueryDashboard tests the dashboard counts, lists and the service join.
func TestQueryDashboard(t *testing.T) {
	deps := openTestDeps(t)
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	svc := service.Service{ID: "s1", Title: "Dental Care", Price: 80, Category: "Dental", CreatedAt: now}
	if err := deps.ServiceStore.Save(ctx, svc); err != nil {
		t.Fatalf("save service: %v", err)
	}

	reviews := []review.Review{
		{ID: "r1", PatientName: "a", Rating: 5, Comment: "c", DatePosted: now, Status: review.StatusApproved},
		{ID: "r2", PatientName: "b", Rating: 2, Comment: "c", DatePosted: now, Status: review.StatusPending},
	}
	for _, r := range reviews {
		if err := deps.ReviewStore.Save(ctx, r); err != nil {
			t.Fatalf("save review: %v", err)
		}
	}

	appointments := []appointment.Appointment{
		{ID: "a1", PatientName: "p1", ServiceID: "s1", AppointmentDate: "2026-09-15", AppointmentTime: "10:00", Status: appointment.StatusPending, CreatedAt: now},
		{ID: "a2", PatientName: "p2", AppointmentDate: "2026-09-16", AppointmentTime: "11:00", Status: appointment.StatusConfirmed, CreatedAt: now.Add(time.Hour)},
	}
	for _, a := range appointments {
		if err := deps.AppointmentStore.Save(ctx, a); err != nil {
			t.Fatalf("save appointment: %v", err)
		}
	}

	c := contact.Contact{ID: "c1", Name: "visitor", Message: "hi", Status: contact.StatusUnread, CreatedAt: now}
	if err := deps.ContactStore.Save(ctx, c); err != nil {
		t.Fatalf("save contact: %v", err)
	}

	result, err := projections.QueryDashboard(ctx, deps)
	if err != nil {
		t.Fatalf("QueryDashboard failed: %v", err)
	}

	stats := result.Stats
	if stats.TotalServices != 1 || stats.TotalReviews != 2 || stats.TotalAppointments != 2 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.PendingReviews != 1 {
		t.Errorf("PendingReviews = %d, want 1", stats.PendingReviews)
	}
	if stats.PendingAppointments != 1 {
		t.Errorf("PendingAppointments = %d, want 1", stats.PendingAppointments)
	}

	if len(result.PendingReviews) != 1 || result.PendingReviews[0].ID != "r2" {
		t.Errorf("PendingReviews = %v, want [r2]", result.PendingReviews)
	}

	if len(result.RecentAppointments) != 2 {
		t.Fatalf("expected 2 recent appointments, got %d", len(result.RecentAppointments))
	}
	// Newest first; a2 has no service, a1 joins to Dental Care.
	if result.RecentAppointments[0].Appointment.ID != "a2" {
		t.Errorf("first appointment = %s, want a2", result.RecentAppointments[0].Appointment.ID)
	}
	if result.RecentAppointments[0].ServiceTitle != "" {
		t.Errorf("a2 ServiceTitle = %q, want empty", result.RecentAppointments[0].ServiceTitle)
	}
	if result.RecentAppointments[1].ServiceTitle != "Dental Care" {
		t.Errorf("a1 ServiceTitle = %q, want Dental Care", result.RecentAppointments[1].ServiceTitle)
	}

	if len(result.RecentContacts) != 1 || result.RecentContacts[0].ID != "c1" {
		t.Errorf("RecentContacts = %v, want [c1]", result.RecentContacts)
	}
}

// TestQueryDashboard_Empty tests the zero-state dashboard.
func TestQueryDashboard_Empty(t *testing.T) {
	deps := openTestDeps(t)
	result, err := projections.QueryDashboard(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryDashboard failed: %v", err)
	}
	if result.Stats != (projections.Stats{}) {
		t.Errorf("expected zero stats, got %+v", result.Stats)
	}
	if len(result.PendingReviews) != 0 || len(result.RecentAppointments) != 0 || len(result.RecentContacts) != 0 {
		t.Error("expected empty lists")
	}
}
