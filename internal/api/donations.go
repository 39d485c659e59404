package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"donation-service/internal/entity"
	"donation-service/internal/service"
)

type DonationHandler struct {
	donationService *service.DonationService
}

// NewDonationHandler creates a new instance of DonationHandler.
func NewDonationHandler(donationService *service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

// AddToDonations records a contribution --> POST /addToDonations
func (h *DonationHandler) AddToDonations(c echo.Context) error {
	donation := entity.Donation{}
	if err := c.Bind(&donation); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	created, err := h.donationService.Record(ctx, &donation)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// DeleteDonation --> DELETE /deleteDonation/:id
func (h *DonationHandler) DeleteDonation(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.donationService.Remove(ctx, id); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Donation deleted"})
}

// DonationsCount --> GET /donationsCount
func (h *DonationHandler) DonationsCount(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	count, err := h.donationService.CountDonations(ctx)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"donations": count})
}
