// handlers/listings.go
package handlers

import (
	"net/http"

	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/services"

	"github.com/gin-gonic/gin"
)

type ListingsHandler struct {
	snapshots *services.SnapshotService
	ingest    *services.IngestService
}

func NewListingsHandler(snapshots *services.SnapshotService, ingest *services.IngestService) *ListingsHandler {
	return &ListingsHandler{snapshots: snapshots, ingest: ingest}
}

// GetSnapshot godoc
// @Summary Current listings snapshot
// @Description Returns the stored snapshot, or the empty shape before any ingestion
// @Tags Listings
// @Produce json
// @Success 200 {object} models.Snapshot
// @Router /scraped-properties [get]
func (h *ListingsHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.snapshots.CurrentSnapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// PushProperties godoc
// @Summary Receive a scraped snapshot push
// @Description Replaces the stored snapshot with the pushed property list
// @Tags Listings
// @Accept json
// @Produce json
// @Param payload body models.IngestRequest true "Snapshot payload"
// @Security BearerAuth
// @Success 200 {object} models.IngestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /scraped-properties [post]
func (h *ListingsHandler) PushProperties(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError("Properties array is required"))
		return
	}

	resp, err := h.ingest.IngestPush(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FetchProperties triggers a synchronous pull from the upstream scraper.
// An upstream failure leaves the stored snapshot untouched.
func (h *ListingsHandler) FetchProperties(c *gin.Context) {
	resp, err := h.ingest.IngestFromScraper(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
