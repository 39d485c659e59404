package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"donation-service/internal/entity"
	"donation-service/internal/service"
)

const dateLayout = "2006-01-02"

type CampaignHandler struct {
	campaignService *service.CampaignService
	uploads         *Uploader
}

// NewCampaignHandler creates a new instance of CampaignHandler.
func NewCampaignHandler(campaignService *service.CampaignService, uploads *Uploader) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, uploads: uploads}
}

// CreateCampaign --> POST /createCampaign (multipart, optional image)
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	goal, err := strconv.ParseFloat(c.FormValue("goalAmount"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "goal amount must be numeric"})
	}

	startDate, err := time.Parse(dateLayout, c.FormValue("startDate"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start date must be YYYY-MM-DD"})
	}
	endDate, err := time.Parse(dateLayout, c.FormValue("endDate"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end date must be YYYY-MM-DD"})
	}

	campaign := &entity.Campaign{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Goal:        goal,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      c.FormValue("status"),
	}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := h.uploads.Save(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to store image"})
		}
		campaign.Image = filename
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.campaignService.CreateCampaign(ctx, campaign)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// GetCampaigns lists campaigns, newest first --> GET /getCampaigns
func (h *CampaignHandler) GetCampaigns(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	campaigns, err := h.campaignService.ListCampaigns(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

// UpdateCampaignStatus --> PUT /updateCampaignStatus/:id
func (h *CampaignHandler) UpdateCampaignStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	req := struct {
		Status string `json:"status"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.campaignService.UpdateStatus(ctx, id, req.Status); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Campaign status updated"})
}

// UpdateRaisedAmount recomputes raised amounts for every campaign and
// returns the refreshed set --> PUT /updateRaisedAmount
func (h *CampaignHandler) UpdateRaisedAmount(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	campaigns, err := h.campaignService.RecomputeRaised(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

// CountAllCampaignsStatus --> GET /countAllCampaignsStatus
func (h *CampaignHandler) CountAllCampaignsStatus(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	counts, err := h.campaignService.CountByStatus(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, counts)
}

// CampaignsCount --> GET /campaignsCount
func (h *CampaignHandler) CampaignsCount(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	count, err := h.campaignService.CountCampaigns(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"campaigns": count})
}

// DeleteCampaign --> DELETE /deleteCampaign/:id
func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.campaignService.DeleteCampaign(ctx, id); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Campaign deleted"})
}
