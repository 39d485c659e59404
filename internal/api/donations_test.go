package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"donation-service/internal/entity"
	"donation-service/internal/service"
)

type fakeDonations struct {
	donations []entity.Donation
	nextID    int
}

func (f *fakeDonations) Create(_ context.Context, donation *entity.Donation) (*entity.Donation, error) {
	f.nextID++
	donation.ID = f.nextID
	f.donations = append(f.donations, *donation)
	return donation, nil
}

func (f *fakeDonations) Delete(_ context.Context, id int) error {
	for i := range f.donations {
		if f.donations[i].ID == id {
			f.donations = append(f.donations[:i], f.donations[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (f *fakeDonations) Count(_ context.Context) (int, error) {
	return len(f.donations), nil
}

func newTestDonationHandler() *DonationHandler {
	return NewDonationHandler(service.NewDonationService(&fakeDonations{}, nil, nil))
}

func TestAddToDonationsRejectsNonPositiveAmount(t *testing.T) {
	h := newTestDonationHandler()

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"user_id":1,"campaign_id":2,"amount":-5,"message":"oops"}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/addToDonations", body), rec)

	if err := h.AddToDonations(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddToDonationsRejectsMissingFields(t *testing.T) {
	h := newTestDonationHandler()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/addToDonations", `{"amount":10}`), rec)

	if err := h.AddToDonations(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddToDonationsCreates(t *testing.T) {
	h := newTestDonationHandler()

	e := echo.New()
	rec := httptest.NewRecorder()
	body := `{"user_id":1,"campaign_id":2,"amount":25,"message":"good luck"}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/addToDonations", body), rec)

	if err := h.AddToDonations(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestDeleteDonationNotFound(t *testing.T) {
	h := newTestDonationHandler()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/deleteDonation/42", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.DeleteDonation(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
