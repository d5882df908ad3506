package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/pricing"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

// quoteRequest carries the union of per-type selections; only the fields
// for the requested service type are read. Quantities are typed loosely on
// purpose: the engine tolerates whatever the form sends.
type quoteRequest struct {
	ServiceType string `json:"serviceType" binding:"required"`

	// car_wash
	Package             string `json:"package"`
	InteriorDetailing   bool   `json:"interiorDetailing"`
	WaxTreatment        bool   `json:"waxTreatment"`
	LeatherConditioning bool   `json:"leatherConditioning"`

	// car_rental
	CarType   string `json:"carType"`
	Insurance string `json:"insurance"`
	Days      any    `json:"days"`

	// driver_hire and bus_service
	Tier  string `json:"tier"`
	Hours any    `json:"hours"`
}

type quoteResponse struct {
	ServiceType service.Type    `json:"serviceType"`
	Total       decimal.Decimal `json:"total"`
}

// quoteHandler returns the running total for a set of selections. Pricing
// never fails; only an unparseable request or unknown service type is an
// error.
func (a *API) quoteHandler(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	t, ok := service.ParseType(req.ServiceType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Unknown service type"})
		return
	}

	c.JSON(http.StatusOK, quoteResponse{
		ServiceType: t,
		Total:       quoteTotal(t, req),
	})
}

func quoteTotal(t service.Type, req quoteRequest) decimal.Decimal {
	switch t {
	case service.CarWash:
		return pricing.CarWash(pricing.CarWashInput{
			Package:             req.Package,
			InteriorDetailing:   req.InteriorDetailing,
			WaxTreatment:        req.WaxTreatment,
			LeatherConditioning: req.LeatherConditioning,
		})
	case service.CarRental:
		return pricing.CarRental(pricing.CarRentalInput{
			CarType:   req.CarType,
			Insurance: req.Insurance,
			Days:      req.Days,
		})
	case service.DriverHire:
		return pricing.DriverHire(pricing.DriverHireInput{
			Tier:  req.Tier,
			Hours: req.Hours,
		})
	case service.BusService:
		return pricing.BusCharter(pricing.BusCharterInput{
			Tier:  req.Tier,
			Hours: req.Hours,
		})
	}
	return decimal.Zero
}
