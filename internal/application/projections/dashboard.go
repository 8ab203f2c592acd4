package projections

import (
	"context"

	appointmentStore "medicare/internal/adapters/storage/appointment"
	contactStore "medicare/internal/adapters/storage/contact"
	reviewStore "medicare/internal/adapters/storage/review"
	serviceStore "medicare/internal/adapters/storage/service"
	"medicare/internal/domain/appointment"
	"medicare/internal/domain/contact"
	"medicare/internal/domain/review"
)

// RecentAppointmentLimit bounds the dashboard appointment list.
const RecentAppointmentLimit = 15

// RecentContactLimit bounds the dashboard contact message list.
const RecentContactLimit = 10

// Stats carries the five scalar dashboard counts.
type Stats struct {
	TotalServices       int
	TotalReviews        int
	TotalAppointments   int
	PendingReviews      int
	PendingAppointments int
}

// AppointmentRow is an appointment joined with its service title for display.
type AppointmentRow struct {
	Appointment  appointment.Appointment
	ServiceTitle string // empty when the service was deleted or never chosen
}

// DashboardDeps holds dependencies for the dashboard query.
type DashboardDeps struct {
	ServiceStore     serviceStore.Store
	ReviewStore      reviewStore.Store
	AppointmentStore appointmentStore.Store
	ContactStore     contactStore.Store
}

// DashboardResult carries everything the admin dashboard renders.
type DashboardResult struct {
	Stats              Stats
	PendingReviews     []review.Review
	RecentAppointments []AppointmentRow
	RecentContacts     []contact.Contact
}

// QueryDashboard assembles the admin dashboard view.
// The appointment/service join happens in memory: the catalog is small.
// PRE: all stores are wired
// POST: Returns counts plus bounded lists; mutates nothing
func QueryDashboard(ctx context.Context, deps DashboardDeps) (DashboardResult, error) {
	var result DashboardResult
	var err error

	if result.Stats.TotalServices, err = deps.ServiceStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.Stats.TotalReviews, err = deps.ReviewStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.Stats.TotalAppointments, err = deps.AppointmentStore.Count(ctx); err != nil {
		return DashboardResult{}, err
	}
	if result.Stats.PendingReviews, err = deps.ReviewStore.CountByStatus(ctx, review.StatusPending); err != nil {
		return DashboardResult{}, err
	}
	if result.Stats.PendingAppointments, err = deps.AppointmentStore.CountByStatus(ctx, appointment.StatusPending); err != nil {
		return DashboardResult{}, err
	}

	if result.PendingReviews, err = deps.ReviewStore.ListPending(ctx); err != nil {
		return DashboardResult{}, err
	}

	appointments, err := deps.AppointmentStore.ListRecent(ctx, RecentAppointmentLimit)
	if err != nil {
		return DashboardResult{}, err
	}
	services, err := deps.ServiceStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	titles := make(map[string]string, len(services))
	for _, svc := range services {
		titles[svc.ID] = svc.Title
	}
	for _, a := range appointments {
		result.RecentAppointments = append(result.RecentAppointments, AppointmentRow{
			Appointment:  a,
			ServiceTitle: titles[a.ServiceID],
		})
	}

	if result.RecentContacts, err = deps.ContactStore.ListRecent(ctx, RecentContactLimit); err != nil {
		return DashboardResult{}, err
	}

	return result, nil
}
