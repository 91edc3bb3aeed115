package handlers

import (
	"net/http"

	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contact *services.ContactService
}

func NewContactHandler(contact *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// SubmitContact relays a contact-form submission by email.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError("Tous les champs requis doivent être remplis"))
		return
	}

	resp, err := h.contact.Relay(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
