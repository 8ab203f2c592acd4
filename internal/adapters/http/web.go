package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"medicare/internal/adapters/email"
	"medicare/internal/adapters/http/middleware"
	accountStore "medicare/internal/adapters/storage/account"
	appointmentStore "medicare/internal/adapters/storage/appointment"
	contactStore "medicare/internal/adapters/storage/contact"
	reviewStore "medicare/internal/adapters/storage/review"
	serviceStore "medicare/internal/adapters/storage/service"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore     accountStore.Store
	ServiceStore     serviceStore.Store
	ReviewStore      reviewStore.Store
	AppointmentStore appointmentStore.Store
	ContactStore     contactStore.Store
}

// loadCSRFKey reads the CSRF secret from MEDICARE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("MEDICARE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("MEDICARE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("MEDICARE_ENV") == "production" {
		log.Fatal("MEDICARE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set MEDICARE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var clinicInboxAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, inbox string) {
	emailSender = sender
	emailFromAddress = from
	clinicInboxAddress = inbox
}

// NewMux wires HTTP handlers for the site.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = os.Getenv("MEDICARE_ENV") == "production"

	mux := http.NewServeMux()
	registerRoutes(mux, staticDir)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
	)
}
