package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"alexsimon-listings/internal/middleware"
	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/services"

	"github.com/gin-gonic/gin"
)

func newMortgageRouter() *gin.Engine {
	handler := NewMortgageHandler(services.NewMortgageService())
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/mortgage/estimate", handler.EstimatePayment)
	return r
}

func TestEstimatePayment_Success(t *testing.T) {
	r := newMortgageRouter()

	w := doJSON(t, r, http.MethodGet, "/api/mortgage/estimate?principal=100000&rate=6&years=30", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var est models.MortgageEstimate
	if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if est.MonthlyPayment < 599.5 || est.MonthlyPayment > 599.6 {
		t.Fatalf("expected ~599.55 monthly, got %.2f", est.MonthlyPayment)
	}
}

func TestEstimatePayment_DefaultsYearsTo25(t *testing.T) {
	r := newMortgageRouter()

	w := doJSON(t, r, http.MethodGet, "/api/mortgage/estimate?principal=100000&rate=5", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var est models.MortgageEstimate
	if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if est.Years != 25 {
		t.Fatalf("expected 25-year default, got %d", est.Years)
	}
}

func TestEstimatePayment_ValidationFailures(t *testing.T) {
	r := newMortgageRouter()

	for _, query := range []string{
		"",
		"?principal=abc&rate=5",
		"?principal=100000",
		"?principal=100000&rate=5&years=0",
		"?principal=100000&rate=-2",
		"?principal=100000&downPayment=200000&rate=5",
	} {
		w := doJSON(t, r, http.MethodGet, "/api/mortgage/estimate"+query, "", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d", query, w.Code)
		}
	}
}
