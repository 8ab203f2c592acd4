package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"medicare/internal/domain/account"
	"medicare/internal/domain/review"
	"medicare/internal/domain/service"

	"github.com/google/uuid"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	Save(ctx context.Context, a account.Account) error
	Count(ctx context.Context) (int, error)
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedAdmin creates an admin account if none exist.
// PRE: Database is initialized, password satisfies domain rules
// POST: Admin account created if count == 0
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, username, password string) error {
	count, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Accounts already exist, skip seeding
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := acct.SetPassword(password); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "admin_seeded", "username", username)
	return nil
}

// ServiceStoreForSeed defines the store interface needed by SeedServices.
type ServiceStoreForSeed interface {
	Save(ctx context.Context, s service.Service) error
	Count(ctx context.Context) (int, error)
}

// SeedServicesDeps holds dependencies for SeedServices.
type SeedServicesDeps struct {
	ServiceStore ServiceStoreForSeed
}

// seedService is one row of demonstration catalog data.
type seedService struct {
	title       string
	description string
	icon        string
	price       float64
	category    string
}

var defaultServices = []seedService{
	{"General Consultation", "Complete health checkup and consultation with our expert doctors", "fa-stethoscope", 50.00, "Consultation"},
	{"Dental Care", "Professional dental cleaning, filling, and oral health checkup", "fa-tooth", 80.00, "Dental"},
	{"Cardiology", "Heart health evaluation and cardiovascular screening", "fa-heart", 120.00, "Specialist"},
	{"Pediatrics", "Child healthcare and immunization services", "fa-child", 60.00, "Pediatrics"},
	{"Dermatology", "Skin treatment and cosmetic procedures", "fa-allergies", 90.00, "Specialist"},
	{"Eye Care", "Vision testing and eye disease treatment", "fa-eye", 70.00, "Specialist"},
	{"Orthopedics", "Bone and joint treatment and rehabilitation", "fa-bone", 110.00, "Specialist"},
	{"Emergency Care", "24/7 emergency medical services", "fa-ambulance", 150.00, "Emergency"},
	{"Lab Tests", "Complete blood work and diagnostic tests", "fa-flask", 40.00, "Diagnostics"},
	{"Physiotherapy", "Physical therapy and rehabilitation services", "fa-hands-helping", 65.00, "Therapy"},
	{"Mental Health", "Counseling and psychiatric consultations", "fa-brain", 85.00, "Mental Health"},
	{"Vaccination", "All types of vaccinations and immunizations", "fa-syringe", 45.00, "Preventive"},
}

// ExecuteSeedServices inserts the demonstration service catalog if the table is empty.
// PRE: Database is initialized
// POST: Catalog seeded if count == 0
func ExecuteSeedServices(ctx context.Context, deps SeedServicesDeps) error {
	count, err := deps.ServiceStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, row := range defaultServices {
		svc := service.Service{
			ID:          uuid.New().String(),
			Title:       row.title,
			Description: row.description,
			Icon:        row.icon,
			Price:       row.price,
			Category:    row.category,
			CreatedAt:   now,
		}
		if err := svc.Validate(); err != nil {
			return err
		}
		if err := deps.ServiceStore.Save(ctx, svc); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "services_seeded", "count", len(defaultServices))
	return nil
}

// ReviewStoreForSeed defines the store interface needed by SeedReviews.
type ReviewStoreForSeed interface {
	Save(ctx context.Context, r review.Review) error
	Count(ctx context.Context) (int, error)
}

// SeedReviewsDeps holds dependencies for SeedReviews.
type SeedReviewsDeps struct {
	ReviewStore ReviewStoreForSeed
}

// seedReview is one row of demonstration testimonial data.
type seedReview struct {
	name    string
	rating  int
	comment string
	date    string
}

var defaultReviews = []seedReview{
	{"John Smith", 5, "Excellent service! The doctors were very professional and caring.", "2024-01-15"},
	{"Sarah Johnson", 4, "Clean facility and friendly staff. Waiting time was minimal.", "2024-01-20"},
	{"Michael Brown", 5, "Best healthcare experience. Highly recommended to everyone!", "2024-02-05"},
	{"Emily Davis", 4, "Very efficient service. Will definitely come back.", "2024-02-12"},
	{"Robert Wilson", 5, "Emergency care saved my life. Thank you to the medical team!", "2024-02-18"},
	{"Jennifer Lee", 4, "Professional staff and good facilities. Satisfied with the treatment.", "2024-02-25"},
}

// ExecuteSeedReviews inserts approved demonstration testimonials if the table is empty.
// PRE: Database is initialized
// POST: Reviews seeded (already approved) if count == 0
func ExecuteSeedReviews(ctx context.Context, deps SeedReviewsDeps) error {
	count, err := deps.ReviewStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, row := range defaultReviews {
		posted, err := time.Parse("2006-01-02", row.date)
		if err != nil {
			return err
		}
		r := review.Review{
			ID:          uuid.New().String(),
			PatientName: row.name,
			Rating:      row.rating,
			Comment:     row.comment,
			DatePosted:  posted,
			Status:      review.StatusApproved,
		}
		if err := r.Validate(); err != nil {
			return err
		}
		if err := deps.ReviewStore.Save(ctx, r); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "reviews_seeded", "count", len(defaultReviews))
	return nil
}
