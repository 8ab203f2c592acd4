package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "medicare/internal/adapters/email"
	web "medicare/internal/adapters/http"
	"medicare/internal/adapters/http/middleware"
	"medicare/internal/adapters/storage"
	accountStore "medicare/internal/adapters/storage/account"
	appointmentStore "medicare/internal/adapters/storage/appointment"
	contactStore "medicare/internal/adapters/storage/contact"
	reviewStore "medicare/internal/adapters/storage/review"
	serviceStore "medicare/internal/adapters/storage/service"
	"medicare/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	env := envOrDefault("MEDICARE_ENV", "development")

	// Open the database with WAL mode, foreign keys, and a busy timeout.
	dbPath := envOrDefault("MEDICARE_DB_PATH", "medicare.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap the DB with slow-query timing.
	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	svcStore := serviceStore.NewSQLiteStore(timedDB)
	revStore := reviewStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:     acctStore,
		ServiceStore:     svcStore,
		ReviewStore:      revStore,
		AppointmentStore: appointmentStore.NewSQLiteStore(timedDB),
		ContactStore:     contactStore.NewSQLiteStore(timedDB),
	}

	// Seed the admin account. Production refuses to run on the default
	// development password.
	adminUsername := envOrDefault("MEDICARE_ADMIN_USERNAME", "admin")
	adminPassword := os.Getenv("MEDICARE_ADMIN_PASSWORD")
	if adminPassword == "" {
		if env == "production" {
			log.Fatal("MEDICARE_ADMIN_PASSWORD must be set in production")
		}
		adminPassword = "admin123"
		log.Println("Using default admin credentials (dev mode) — set MEDICARE_ADMIN_PASSWORD to override")
	}
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminUsername, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed the service catalog.
	if err := orchestrators.ExecuteSeedServices(context.Background(), orchestrators.SeedServicesDeps{ServiceStore: svcStore}); err != nil {
		log.Fatalf("failed to seed services: %v", err)
	}

	// Seed starter reviews for development only.
	if env != "production" {
		if err := orchestrators.ExecuteSeedReviews(context.Background(), orchestrators.SeedReviewsDeps{ReviewStore: revStore}); err != nil {
			log.Fatalf("failed to seed reviews: %v", err)
		}
	}

	// Configure email sender
	resendKey := os.Getenv("MEDICARE_RESEND_KEY")
	emailFrom := envOrDefault("MEDICARE_RESEND_FROM", "MediCare Health Center <noreply@medicare.example>")
	clinicInbox := envOrDefault("MEDICARE_CONTACT_INBOX", "info@medicare.example")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, clinicInbox)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, clinicInbox)
		if env == "production" {
			log.Println("WARNING: MEDICARE_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set MEDICARE_RESEND_KEY for real delivery)")
		}
	}

	if env == "production" {
		middleware.SecureCookies = true
	}

	mux := web.NewMux("static", stores)

	addr := envOrDefault("MEDICARE_ADDR", ":8080")
	log.Printf("MediCare %s starting on %s (env=%s)", version, addr, env)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
