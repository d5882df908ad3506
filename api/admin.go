package api

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/booking"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/coupon"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/middleware"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/rental"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

func (a *API) adminListBookingsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	statusPtr, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	bookings, err := a.stores.Bookings.List(c, statusPtr)
	if err != nil {
		logger.ErrorContext(c, "failed to list bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b, true))
	}
	c.JSON(http.StatusOK, responses)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	// AdminNotes rides along the transition as an independent field write;
	// it never gates the transition itself.
	AdminNotes *string `json:"adminNotes"`
}

func (a *API) adminUpdateStatusHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid bookingId"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	target, ok := booking.ParseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_STATUS", "message": "Unknown booking status"})
		return
	}

	b, err := a.stores.Bookings.UpdateStatus(c, bookingID, target, req.AdminNotes)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
			return
		}
		if from, to, ok := booking.StatesFromInvalidTransitionError(err); ok {
			middleware.RecordTransition(string(to), "rejected")
			c.JSON(http.StatusConflict, gin.H{
				"code":    "INVALID_TRANSITION",
				"message": err.Error(),
				"from":    from,
				"to":      to,
			})
			return
		}
		logger.ErrorContext(c, "failed to update booking status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	middleware.RecordTransition(string(target), "applied")
	c.JSON(http.StatusOK, toBookingResponse(b, true))
}

type transitionsResponse struct {
	Status booking.Status   `json:"status"`
	Next   []booking.Status `json:"next"`
}

// adminTransitionsHandler reports the legal next statuses for a booking so
// the dashboard renders actions from the state machine instead of
// hard-coding button visibility.
func (a *API) adminTransitionsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
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

	c.JSON(http.StatusOK, transitionsResponse{
		Status: b.Status,
		Next:   booking.NextStatuses(b.Status),
	})
}

type serviceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Type            string          `json:"type"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes *int32          `json:"durationMinutes"`
	ImageURL        *string         `json:"imageUrl"`
}

func (a *API) adminCreateServiceHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	t, ok := service.ParseType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Unknown service type"})
		return
	}

	s := service.Service{
		Name:        req.Name,
		Description: req.Description,
		Type:        t,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if req.DurationMinutes != nil {
		s.DurationMinutes = sql.NullInt32{Int32: *req.DurationMinutes, Valid: true}
	}

	if err := a.stores.Services.Create(c, &s); err != nil {
		logger.ErrorContext(c, "failed to create service", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(s))
}

func (a *API) adminUpdateServiceHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid service id"})
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	s := service.Service{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if req.DurationMinutes != nil {
		s.DurationMinutes = sql.NullInt32{Int32: *req.DurationMinutes, Valid: true}
	}

	if err := a.stores.Services.Update(c, &s); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "SERVICE_NOT_FOUND", "message": "Service not found"})
			return
		}
		logger.ErrorContext(c, "failed to update service", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(s))
}

type fleetVehicleRequest struct {
	Name            string          `json:"name" binding:"required"`
	Type            string          `json:"type"`
	SeatingCapacity int             `json:"seatingCapacity"`
	PricePerDay     decimal.Decimal `json:"pricePerDay"`
	Availability    string          `json:"availability"`
}

func (a *API) adminCreateFleetVehicleHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	var req fleetVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	if req.Type != "car" && req.Type != "bus" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Fleet vehicle type must be car or bus"})
		return
	}
	if req.Availability == "" {
		req.Availability = "available"
	}

	v := rental.Vehicle{
		Name:            req.Name,
		Type:            req.Type,
		SeatingCapacity: req.SeatingCapacity,
		PricePerDay:     req.PricePerDay,
		Availability:    req.Availability,
	}
	if err := a.stores.Fleet.Create(c, &v); err != nil {
		logger.ErrorContext(c, "failed to create fleet vehicle", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toFleetVehicleResponse(v))
}

func (a *API) adminUpdateFleetVehicleHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Invalid fleet vehicle id"})
		return
	}

	var req fleetVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	v := rental.Vehicle{
		ID:              id,
		Name:            req.Name,
		SeatingCapacity: req.SeatingCapacity,
		PricePerDay:     req.PricePerDay,
		Availability:    req.Availability,
	}
	if err := a.stores.Fleet.Update(c, &v); err != nil {
		if errors.Is(err, rental.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "FLEET_VEHICLE_NOT_FOUND", "message": "Fleet vehicle not found"})
			return
		}
		logger.ErrorContext(c, "failed to update fleet vehicle", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, toFleetVehicleResponse(v))
}

func (a *API) adminListCouponsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	coupons, err := a.stores.Coupons.List(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list coupons", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]couponResponse, 0, len(coupons))
	for _, cpn := range coupons {
		resp := couponResponse{
			Code:            cpn.Code,
			DiscountPercent: cpn.DiscountPercent,
			ServiceType:     cpn.ServiceType.String,
			Valid:           !cpn.ExpiresAt.Valid || cpn.ExpiresAt.Time.After(time.Now()),
		}
		if cpn.ExpiresAt.Valid {
			resp.ExpiresAt = &cpn.ExpiresAt.Time
		}
		responses = append(responses, resp)
	}
	c.JSON(http.StatusOK, responses)
}

type createCouponRequest struct {
	Code            string          `json:"code" binding:"required"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	ExpiresAt       *time.Time      `json:"expiresAt"`
	ServiceType     string          `json:"serviceType"`
}

func (a *API) adminCreateCouponHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	var req createCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	cpn := coupon.Coupon{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
	}
	if req.ExpiresAt != nil {
		cpn.ExpiresAt = sql.NullTime{Time: *req.ExpiresAt, Valid: true}
	}
	if req.ServiceType != "" {
		if _, ok := service.ParseType(req.ServiceType); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Unknown service type"})
			return
		}
		cpn.ServiceType = sql.NullString{String: req.ServiceType, Valid: true}
	}

	if err := a.stores.Coupons.Create(c, &cpn); err != nil {
		logger.ErrorContext(c, "failed to create coupon", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": cpn.Code, "discountPercent": cpn.DiscountPercent})
}

type customerResponse struct {
	ID        uuid.UUID `json:"id"`
	Auth0ID   string    `json:"auth0Id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *API) adminListCustomersHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	if _, ok := a.requireAdmin(c); !ok {
		return
	}

	customers, err := a.stores.Customers.List(c)
	if err != nil {
		logger.ErrorContext(c, "failed to list customers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]customerResponse, 0, len(customers))
	for _, cust := range customers {
		responses = append(responses, customerResponse{
			ID:        cust.ID,
			Auth0ID:   cust.Auth0ID,
			Email:     cust.Email.String,
			Name:      cust.Name.String,
			Admin:     cust.Admin,
			CreatedAt: cust.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}
