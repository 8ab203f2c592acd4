package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"medicare/internal/adapters/http/middleware"
	"medicare/internal/application/orchestrators"
	"medicare/internal/application/projections"
	appointmentDomain "medicare/internal/domain/appointment"
	contactDomain "medicare/internal/domain/contact"
	reviewDomain "medicare/internal/domain/review"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// Page names carried in the `page` query parameter.
const (
	pageHome     = "home"
	pageServices = "services"
	pageAbout    = "about"
	pageContact  = "contact"
	pageAdmin    = "admin"
)

// Action names carried in the submitted form. The dispatch below is a closed
// set: anything else is rejected.
const (
	actionBookAppointment     = "book_appointment"
	actionSubmitReview        = "submit_review"
	actionContactForm         = "contact_form"
	actionAdminLogin          = "admin_login"
	actionApproveReview       = "approve_review"
	actionDeleteReview        = "delete_review"
	actionConfirmAppointment  = "confirm_appointment"
	actionCompleteAppointment = "complete_appointment"
	actionCancelAppointment   = "cancel_appointment"
)

// flash is a short-lived status message rendered once after a form submission.
type flash struct {
	Text string
	Kind string // "success" or "error"
}

// reviewsOnHomePage bounds the testimonial section.
const reviewsOnHomePage = 6

// templatesDir is a variable so tests can point it at the package-local dir.
var templatesDir = "internal/adapters/http/templates"

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// handleSite is the single site endpoint: GET renders a page selected by the
// `page` query parameter, POST dispatches a form action and re-renders.
func handleSite(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Get("logout") != "" {
			handleLogout(w, r)
			return
		}
		renderPage(w, r, currentPage(r), flash{})
	case http.MethodPost:
		handleAction(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// currentPage maps the `page` query parameter to a render branch.
// Unrecognized values fall back to home.
func currentPage(r *http.Request) string {
	switch r.URL.Query().Get("page") {
	case pageServices:
		return pageServices
	case pageAbout:
		return pageAbout
	case pageContact:
		return pageContact
	case pageAdmin:
		return pageAdmin
	default:
		return pageHome
	}
}

// handleLogout destroys the session and redirects home.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/?page=home", http.StatusSeeOther)
}

// handleAction executes one write action against the store, sets a flash and
// re-renders the page the form was submitted from. Login redirects instead.
func handleAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	action := r.FormValue("action")

	switch action {
	case actionBookAppointment:
		input := orchestrators.BookAppointmentInput{
			PatientName:     r.FormValue("name"),
			Email:           r.FormValue("email"),
			Phone:           r.FormValue("phone"),
			ServiceID:       r.FormValue("service"),
			AppointmentDate: r.FormValue("date"),
			AppointmentTime: r.FormValue("time"),
			Message:         r.FormValue("message"),
		}
		a, err := orchestrators.ExecuteBookAppointment(ctx, input, orchestrators.BookAppointmentDeps{
			AppointmentStore: stores.AppointmentStore,
			GenerateID:       generateID,
			Now:              timeNow,
		})
		if err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		notifyBooking(a.ID)
		renderPage(w, r, currentPage(r), flash{"Appointment booked successfully! We will contact you soon.", "success"})

	case actionSubmitReview:
		input := orchestrators.SubmitReviewInput{
			PatientName: r.FormValue("name"),
			Rating:      parseRating(r.FormValue("rating")),
			Comment:     r.FormValue("comment"),
		}
		_, err := orchestrators.ExecuteSubmitReview(ctx, input, orchestrators.SubmitReviewDeps{
			ReviewStore: stores.ReviewStore,
			GenerateID:  generateID,
			Now:         timeNow,
		})
		if err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		renderPage(w, r, currentPage(r), flash{"Review submitted successfully! Thank you for your feedback.", "success"})

	case actionContactForm:
		input := orchestrators.SubmitContactInput{
			Name:    r.FormValue("contact_name"),
			Email:   r.FormValue("contact_email"),
			Subject: r.FormValue("contact_subject"),
			Message: r.FormValue("contact_message"),
		}
		c, err := orchestrators.ExecuteSubmitContact(ctx, input, orchestrators.SubmitContactDeps{
			ContactStore: stores.ContactStore,
			GenerateID:   generateID,
			Now:          timeNow,
		})
		if err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		go orchestrators.ExecuteNotifyContact(context.Background(), notifyDeps(), c)
		renderPage(w, r, currentPage(r), flash{"Message sent successfully! We will get back to you soon.", "success"})

	case actionAdminLogin:
		input := orchestrators.LoginInput{
			Username: r.FormValue("username"),
			Password: r.FormValue("password"),
		}
		result, err := orchestrators.ExecuteLogin(ctx, input, orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			fl := flash{"Invalid username or password!", "error"}
			if errors.Is(err, orchestrators.ErrAccountLocked) {
				fl.Text = "Too many failed attempts. Please try again later."
			}
			renderPage(w, r, pageAdmin, fl)
			return
		}
		token, err := sessions.Create(result.AdminID, result.Username)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/?page=admin", http.StatusSeeOther)

	case actionApproveReview, actionDeleteReview,
		actionConfirmAppointment, actionCompleteAppointment, actionCancelAppointment:
		if !middleware.IsAdmin(ctx) {
			w.WriteHeader(http.StatusForbidden)
			renderPage(w, r, currentPage(r), flash{"You are not authorized to perform this action.", "error"})
			return
		}
		handleAdminAction(w, r, action)

	default:
		w.WriteHeader(http.StatusBadRequest)
		renderPage(w, r, currentPage(r), flash{"Unknown action.", "error"})
	}
}

// handleAdminAction runs one of the protected moderation actions.
// PRE: the request carries an authenticated admin session
func handleAdminAction(w http.ResponseWriter, r *http.Request, action string) {
	ctx := r.Context()

	reviewDeps := orchestrators.ModerateReviewDeps{ReviewStore: stores.ReviewStore}
	apptDeps := orchestrators.AppointmentStatusDeps{AppointmentStore: stores.AppointmentStore}

	var fl flash
	switch action {
	case actionApproveReview:
		if _, err := orchestrators.ExecuteApproveReview(ctx, r.FormValue("review_id"), reviewDeps); err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		fl = flash{"Review approved successfully!", "success"}
	case actionDeleteReview:
		if err := orchestrators.ExecuteDeleteReview(ctx, r.FormValue("review_id"), reviewDeps); err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		fl = flash{"Review deleted successfully!", "success"}
	case actionConfirmAppointment:
		if _, err := orchestrators.ExecuteConfirmAppointment(ctx, r.FormValue("appointment_id"), apptDeps); err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		fl = flash{"Appointment confirmed!", "success"}
	case actionCompleteAppointment:
		if _, err := orchestrators.ExecuteCompleteAppointment(ctx, r.FormValue("appointment_id"), apptDeps); err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		fl = flash{"Appointment marked as completed!", "success"}
	case actionCancelAppointment:
		if _, err := orchestrators.ExecuteCancelAppointment(ctx, r.FormValue("appointment_id"), apptDeps); err != nil {
			renderPage(w, r, currentPage(r), errorFlash(err))
			return
		}
		fl = flash{"Appointment cancelled!", "success"}
	}

	renderPage(w, r, currentPage(r), fl)
}

// validationErrors are domain errors whose text is safe to show verbatim.
var validationErrors = []error{
	reviewDomain.ErrEmptyPatientName,
	reviewDomain.ErrEmptyComment,
	reviewDomain.ErrInvalidRating,
	reviewDomain.ErrAlreadyApproved,
	appointmentDomain.ErrEmptyPatientName,
	appointmentDomain.ErrInvalidDate,
	appointmentDomain.ErrInvalidTime,
	appointmentDomain.ErrNotPending,
	appointmentDomain.ErrNotConfirmed,
	appointmentDomain.ErrAlreadyClosed,
	contactDomain.ErrEmptyName,
	contactDomain.ErrEmptyMessage,
}

// errorFlash maps orchestrator errors onto safe user-facing flash text.
// Unknown errors are logged and replaced with a generic message; internal
// error text is never echoed to end users.
func errorFlash(err error) flash {
	if errors.Is(err, orchestrators.ErrNotFound) {
		return flash{"The requested item no longer exists.", "error"}
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return flash{err.Error(), "error"}
		}
	}
	slog.Error("action_failed", "error", err.Error())
	return flash{"Something went wrong. Please try again.", "error"}
}

// parseRating converts the submitted rating field; anything that is not a
// plain integer becomes 0 and falls through to domain validation.
func parseRating(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// notifyDeps assembles the notification dependencies from the globals.
func notifyDeps() orchestrators.NotifyDeps {
	return orchestrators.NotifyDeps{
		Sender:      emailSender,
		From:        emailFromAddress,
		ClinicInbox: clinicInboxAddress,
	}
}

// notifyBooking sends the booking-received email in the background.
func notifyBooking(appointmentID string) {
	if emailSender == nil {
		return
	}
	deps := notifyDeps()
	appointmentStore := stores.AppointmentStore
	serviceStore := stores.ServiceStore
	go func() {
		ctx := context.Background()
		a, err := appointmentStore.GetByID(ctx, appointmentID)
		if err != nil {
			slog.Error("appointment_event", "event", "notify_lookup_failed", "appointment_id", appointmentID, "error", err)
			return
		}
		title := ""
		if a.ServiceID != "" {
			if svc, err := serviceStore.GetByID(ctx, a.ServiceID); err == nil {
				title = svc.Title
			}
		}
		orchestrators.ExecuteNotifyBooking(ctx, deps, a, title)
	}()
}

// pageTitle returns the browser title for a page.
func pageTitle(page string, isAdmin bool) string {
	switch {
	case page == pageAdmin && isAdmin:
		return "Admin Panel - MediCare"
	case page == pageAdmin:
		return "Admin Login - MediCare"
	case page == pageServices:
		return "Our Services - MediCare"
	case page == pageAbout:
		return "About Us - MediCare"
	case page == pageContact:
		return "Contact Us - MediCare"
	default:
		return "MediCare Health Center"
	}
}

// renderPage loads the data a page needs and renders its template.
func renderPage(w http.ResponseWriter, r *http.Request, page string, fl flash) {
	ctx := r.Context()
	isAdmin := middleware.IsAdmin(ctx)

	data := map[string]any{
		"Page":        page,
		"Title":       pageTitle(page, isAdmin),
		"Message":     fl.Text,
		"MessageType": fl.Kind,
		"ShowNav":     page != pageAdmin,
		"Year":        timeNow().Year(),
	}

	switch page {
	case pageServices:
		services, err := stores.ServiceStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		categories, err := stores.ServiceStore.Categories(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		data["Services"] = services
		data["Categories"] = categories
		renderTemplate(w, r, "services.html", data)

	case pageAbout:
		renderTemplate(w, r, "about.html", data)

	case pageContact:
		renderTemplate(w, r, "contact.html", data)

	case pageAdmin:
		if !isAdmin {
			renderTemplate(w, r, "admin_login.html", data)
			return
		}
		result, err := projections.QueryDashboard(ctx, projections.DashboardDeps{
			ServiceStore:     stores.ServiceStore,
			ReviewStore:      stores.ReviewStore,
			AppointmentStore: stores.AppointmentStore,
			ContactStore:     stores.ContactStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		sess, _ := middleware.GetSessionFromContext(ctx)
		data["Dashboard"] = result
		data["Username"] = sess.Username
		renderTemplate(w, r, "admin_dashboard.html", data)

	default: // home
		services, err := stores.ServiceStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		reviews, err := stores.ReviewStore.ListApproved(ctx, reviewsOnHomePage)
		if err != nil {
			internalError(w, err)
			return
		}
		featured := services
		if len(featured) > 6 {
			featured = featured[:6]
		}
		data["Services"] = services
		data["Featured"] = featured
		data["Reviews"] = reviews
		renderTemplate(w, r, "home.html", data)
	}
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())
	username := ""
	if loggedIn {
		username = sess.Username
	}

	funcMap := template.FuncMap{
		"isAdmin":      func() bool { return loggedIn },
		"currentAdmin": func() string { return username },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i + 1
			}
			return s
		},
		"truncate": func(s string, n int) string {
			if len(s) <= n {
				return s
			}
			return s[:n] + "..."
		},
		"statusLabel": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}
