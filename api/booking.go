package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/booking"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/middleware"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/vehicle"
)

type bookingResponse struct {
	ID              uuid.UUID       `json:"id"`
	ServiceID       *uuid.UUID      `json:"serviceId,omitempty"`
	ServiceType     service.Type    `json:"serviceType"`
	Status          booking.Status  `json:"status"`
	ScheduledTime   time.Time       `json:"scheduledTime"`
	Price           decimal.Decimal `json:"price"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	CouponCode      string          `json:"couponCode,omitempty"`
	Details         booking.Details `json:"details"`
	AdminNotes      string          `json:"adminNotes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// toBookingResponse maps a booking row to its API shape. Admin notes are an
// administrator-only field and stay out of customer-facing responses.
func toBookingResponse(b booking.Booking, includeAdminNotes bool) bookingResponse {
	resp := bookingResponse{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		ServiceType:     b.ServiceType,
		Status:          b.Status,
		ScheduledTime:   b.ScheduledTime,
		Price:           b.Price,
		SpecialRequests: b.SpecialRequests.String,
		CouponCode:      b.CouponCode.String,
		Details:         b.Details(),
		CreatedAt:       b.CreatedAt,
	}
	if includeAdminNotes {
		resp.AdminNotes = b.AdminNotes.String
	}
	return resp
}

type newVehicleRequest struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
}

type createBookingRequest struct {
	quoteRequest

	ScheduledTime   string `json:"scheduledTime" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
	CouponCode      string `json:"couponCode"`

	// car_wash: an existing vehicle or one registered on the spot
	VehicleID  string             `json:"vehicleId"`
	NewVehicle *newVehicleRequest `json:"newVehicle"`

	// locations
	PickupLocation  string `json:"pickupLocation"`
	Destination     string `json:"destination"`
	ReturnLocation  string `json:"returnLocation"`
	SeatingCapacity string `json:"seatingCapacity"`
	Passengers      string `json:"passengers"`
	RoundTrip       bool   `json:"roundTrip"`
}

func (a *API) getBookingsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	cust, ok := a.currentCustomer(c)
	if !ok {
		return
	}

	statusPtr, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	bookings, err := a.stores.Bookings.GetByCustomerID(c, cust.ID, statusPtr)
	if err != nil {
		logger.ErrorContext(c, "failed to get customer bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b, false))
	}
	c.JSON(http.StatusOK, responses)
}

func (a *API) getBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	cust, ok := a.currentCustomer(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid bookingId"})
		return
	}

	b, err := a.stores.Bookings.GetByID(c, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
			return
		}
		logger.ErrorContext(c, "failed to get booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// Ownership is not leaked: a foreign booking reads as absent.
	if b.CustomerID != cust.ID {
		c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(b, false))
}

func (a *API) createBookingHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	cust, ok := a.currentCustomer(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	scheduledTime, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid scheduledTime format"})
		return
	}

	t, ok := service.ParseType(req.ServiceType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Unknown service type"})
		return
	}

	svc, err := a.stores.Services.GetByType(c, t)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) && t == service.BusService {
			svc = service.SyntheticBusCharter()
		} else if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "SERVICE_NOT_FOUND", "message": "Service not found"})
			return
		} else {
			logger.ErrorContext(c, "failed to get service", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	details, ok := a.buildDetails(c, cust.ID, t, req)
	if !ok {
		return
	}

	b, err := booking.New(booking.Request{
		CustomerID:      cust.ID,
		Service:         svc,
		ScheduledTime:   scheduledTime,
		Price:           quoteTotal(t, req.quoteRequest),
		SpecialRequests: req.SpecialRequests,
		CouponCode:      req.CouponCode,
		Details:         details,
	})
	if err != nil {
		if errors.Is(err, booking.ErrMissingVehicle) {
			c.JSON(http.StatusBadRequest, gin.H{"code": "MISSING_VEHICLE", "message": "Car wash bookings require a vehicle"})
			return
		}
		if errors.Is(err, booking.ErrMissingSchedule) {
			c.JSON(http.StatusBadRequest, gin.H{"code": "MISSING_DATE", "message": "Booking requires a scheduled time"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	if err := a.stores.Bookings.Create(c, &b); err != nil {
		logger.ErrorContext(c, "failed to create booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(b, false))
}

// buildDetails assembles the type-specific booking details, registering a
// new vehicle first when the request carries one.
func (a *API) buildDetails(c *gin.Context, customerID uuid.UUID, t service.Type, req createBookingRequest) (booking.Details, bool) {
	logger := middleware.GetLogger(c)

	switch t {
	case service.CarWash:
		if req.NewVehicle != nil {
			v := vehicle.Vehicle{
				OwnerID:      customerID,
				Make:         req.NewVehicle.Make,
				Model:        req.NewVehicle.Model,
				Year:         req.NewVehicle.Year,
				LicensePlate: req.NewVehicle.LicensePlate,
			}
			if err := a.stores.Vehicles.Create(c, &v); err != nil {
				logger.ErrorContext(c, "failed to create vehicle", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
				return nil, false
			}
			return booking.CarWashDetails{VehicleID: v.ID}, true
		}

		if req.VehicleID == "" {
			// booking.New rejects the zero vehicle ID.
			return booking.CarWashDetails{}, true
		}

		vehicleID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid vehicleId"})
			return nil, false
		}
		v, err := a.stores.Vehicles.GetByID(c, vehicleID)
		if err != nil && !errors.Is(err, vehicle.ErrNotFound) {
			logger.ErrorContext(c, "failed to get vehicle", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return nil, false
		}
		if errors.Is(err, vehicle.ErrNotFound) || v.OwnerID != customerID {
			c.JSON(http.StatusNotFound, gin.H{"code": "VEHICLE_NOT_FOUND", "message": "Vehicle not found"})
			return nil, false
		}
		return booking.CarWashDetails{VehicleID: v.ID}, true

	case service.DriverHire:
		return booking.DriverHireDetails{
			PickupLocation: req.PickupLocation,
			Destination:    req.Destination,
		}, true

	case service.CarRental:
		return booking.CarRentalDetails{
			PickupLocation:  req.PickupLocation,
			ReturnLocation:  req.ReturnLocation,
			SeatingCapacity: req.SeatingCapacity,
			RentalDays:      cast.ToInt(req.Days),
		}, true

	case service.BusService:
		return booking.BusCharterDetails{
			PickupLocation: req.PickupLocation,
			Destination:    req.Destination,
			Passengers:     req.Passengers,
			RoundTrip:      req.RoundTrip,
		}, true
	}

	c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Unknown service type"})
	return nil, false
}

// parseStatusQuery reads an optional ?status= filter. A missing filter is
// nil; an unknown status is a client error.
func parseStatusQuery(c *gin.Context) (*booking.Status, bool) {
	statusStr := c.Query("status")
	if statusStr == "" {
		return nil, true
	}
	status, ok := booking.ParseStatus(statusStr)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_STATUS", "message": "Unknown booking status"})
		return nil, false
	}
	return &status, true
}
