package handlers

import (
	"net/http"
	"strconv"

	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/services"

	"github.com/gin-gonic/gin"
)

type MortgageHandler struct {
	mortgage *services.MortgageService
}

func NewMortgageHandler(mortgage *services.MortgageService) *MortgageHandler {
	return &MortgageHandler{mortgage: mortgage}
}

// EstimatePayment computes the amortized monthly payment for the given
// principal, down payment, annual rate (percent) and term in years.
func (h *MortgageHandler) EstimatePayment(c *gin.Context) {
	principal, err := strconv.ParseFloat(c.Query("principal"), 64)
	if err != nil {
		c.Error(errors.NewValidationError("principal is required and must be a number"))
		return
	}
	downPayment := 0.0
	if raw := c.Query("downPayment"); raw != "" {
		if downPayment, err = strconv.ParseFloat(raw, 64); err != nil {
			c.Error(errors.NewValidationError("downPayment must be a number"))
			return
		}
	}
	rate, err := strconv.ParseFloat(c.Query("rate"), 64)
	if err != nil {
		c.Error(errors.NewValidationError("rate is required and must be a number"))
		return
	}
	years, err := strconv.Atoi(c.DefaultQuery("years", "25"))
	if err != nil {
		c.Error(errors.NewValidationError("years must be an integer"))
		return
	}

	estimate, err := h.mortgage.Estimate(principal, downPayment, rate, years)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}
