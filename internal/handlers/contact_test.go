package handlers

import (
	"net/http"
	"strings"
	"testing"

	"alexsimon-listings/internal/middleware"
	"alexsimon-listings/internal/services"
	"alexsimon-listings/internal/validators"
	"alexsimon-listings/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type captureMailer struct {
	sent []*mailer.Message
}

func (m *captureMailer) Send(msg *mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newContactRouter(m mailer.Mailer, configured bool) *gin.Engine {
	svc := services.NewContactService(m, validators.NewContactValidator(), "broker@example.com", configured)
	handler := NewContactHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/contact", handler.SubmitContact)
	return r
}

func TestSubmitContact_Success(t *testing.T) {
	m := &captureMailer{}
	r := newContactRouter(m, true)

	w := doJSON(t, r, http.MethodPost, "/api/contact", "",
		`{"name":"Marie","email":"marie@example.com","subject":"vente","message":"Bonjour"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Fatalf("expected success response, got %s", w.Body.String())
	}
	if len(m.sent) != 1 {
		t.Fatalf("expected 1 email sent, got %d", len(m.sent))
	}
	if !strings.Contains(m.sent[0].Subject, "Vente") {
		t.Fatalf("expected French subject label, got %q", m.sent[0].Subject)
	}
}

func TestSubmitContact_MissingRequiredFields(t *testing.T) {
	m := &captureMailer{}
	r := newContactRouter(m, true)

	w := doJSON(t, r, http.MethodPost, "/api/contact", "",
		`{"name":"Marie","email":"marie@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if len(m.sent) != 0 {
		t.Fatalf("expected no email on validation failure")
	}
}

func TestSubmitContact_InvalidJSON(t *testing.T) {
	r := newContactRouter(&captureMailer{}, true)

	w := doJSON(t, r, http.MethodPost, "/api/contact", "", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSubmitContact_UnconfiguredTransportReportsTestMode(t *testing.T) {
	r := newContactRouter(&mailer.ConsoleMailer{}, false)

	w := doJSON(t, r, http.MethodPost, "/api/contact", "",
		`{"name":"Marie","email":"marie@example.com","subject":"autre","message":"Allo"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected degraded success, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "mode test") {
		t.Fatalf("expected test-mode message, got %s", w.Body.String())
	}
}
