package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"donation-service/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new instance of ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDonations returns the global donation feed --> GET /getDonations
func (h *ReportHandler) GetDonations(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	donations, err := h.reportService.ListDonations(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"donations": donations})
}

// GetMyDonations returns one user's donation history --> GET /getMyDonations/:user_id
func (h *ReportHandler) GetMyDonations(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	donations, err := h.reportService.ListDonationsForUser(ctx, userID)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"donations": donations})
}

// GetLeaderboard ranks contributors by total donated --> GET /getLeaderboard
func (h *ReportHandler) GetLeaderboard(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	entries, err := h.reportService.Leaderboard(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
