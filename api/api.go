// Package api exposes the booking backend over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/booking"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/coupon"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/customer"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/middleware"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/o11y"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/rental"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/vehicle"
)

// The API depends on store interfaces rather than concrete repositories so
// tests can substitute in-memory fakes. The sqlx repositories satisfy these.

type ServiceStore interface {
	List(ctx context.Context) ([]service.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (service.Service, error)
	GetByType(ctx context.Context, t service.Type) (service.Service, error)
	Create(ctx context.Context, s *service.Service) error
	Update(ctx context.Context, s *service.Service) error
}

type BookingStore interface {
	Create(ctx context.Context, b *booking.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (booking.Booking, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID, status *booking.Status) ([]booking.Booking, error)
	List(ctx context.Context, status *booking.Status) ([]booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target booking.Status, adminNotes *string) (booking.Booking, error)
}

type VehicleStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]vehicle.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (vehicle.Vehicle, error)
	Create(ctx context.Context, v *vehicle.Vehicle) error
}

type FleetStore interface {
	List(ctx context.Context, vehicleType *string) ([]rental.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (rental.Vehicle, error)
	Create(ctx context.Context, v *rental.Vehicle) error
	Update(ctx context.Context, v *rental.Vehicle) error
}

type CouponStore interface {
	GetByCode(ctx context.Context, code string) (coupon.Coupon, error)
	List(ctx context.Context) ([]coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) error
}

type CustomerStore interface {
	GetByAuth0ID(ctx context.Context, auth0ID string) (*customer.Customer, error)
	Create(ctx context.Context, auth0ID string) (*customer.Customer, error)
	List(ctx context.Context) ([]customer.Customer, error)
}

type Stores struct {
	Services  ServiceStore
	Bookings  BookingStore
	Vehicles  VehicleStore
	Fleet     FleetStore
	Coupons   CouponStore
	Customers CustomerStore
}

type API struct {
	r      *gin.Engine
	stores Stores
}

// New wires the router. auth is the token-validation middleware; production
// passes middleware.EnsureValidToken and tests substitute a fake that
// injects claims directly.
func New(stores Stores, obs *o11y.Observability, auth gin.HandlerFunc, metricsUsername, metricsPassword string) *API {
	a := &API{
		r:      gin.New(),
		stores: stores,
	}

	a.r.Use(gin.Recovery())
	a.r.Use(middleware.Tracing())
	a.r.Use(middleware.Logging(obs.Logger))
	a.r.Use(middleware.Metrics(obs.Registry))

	a.r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	metrics := a.r.Group("/metrics", gin.BasicAuth(gin.Accounts{metricsUsername: metricsPassword}))
	metrics.GET("", metricsHandler(obs))

	a.r.GET("/services", a.servicesHandler)
	a.r.GET("/services/:type", a.serviceHandler)
	a.r.GET("/fleet", a.fleetHandler)
	a.r.POST("/quotes", a.quoteHandler)

	authed := a.r.Group("/")
	authed.Use(auth)
	{
		authed.GET("/vehicles", a.getVehiclesHandler)
		authed.POST("/vehicles", a.createVehicleHandler)
		authed.GET("/bookings", a.getBookingsHandler)
		authed.POST("/bookings", a.createBookingHandler)
		authed.GET("/bookings/:bookingId", a.getBookingHandler)
		authed.GET("/coupons/:code", a.couponHandler)

		admin := authed.Group("/admin")
		{
			admin.GET("/bookings", a.adminListBookingsHandler)
			admin.POST("/bookings/:bookingId/status", a.adminUpdateStatusHandler)
			admin.GET("/bookings/:bookingId/transitions", a.adminTransitionsHandler)
			admin.POST("/services", a.adminCreateServiceHandler)
			admin.PUT("/services/:id", a.adminUpdateServiceHandler)
			admin.POST("/fleet", a.adminCreateFleetVehicleHandler)
			admin.PUT("/fleet/:id", a.adminUpdateFleetVehicleHandler)
			admin.GET("/coupons", a.adminListCouponsHandler)
			admin.POST("/coupons", a.adminCreateCouponHandler)
			admin.GET("/customers", a.adminListCustomersHandler)
		}
	}

	return a
}

func (a *API) Router() *gin.Engine {
	return a.r
}

// currentCustomer resolves the authenticated caller, creating the customer
// row on first contact.
func (a *API) currentCustomer(c *gin.Context) (*customer.Customer, bool) {
	logger := middleware.GetLogger(c)

	auth0ID, ok := middleware.GetAuth0ID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"})
		return nil, false
	}

	cust, err := a.stores.Customers.GetByAuth0ID(c, auth0ID)
	if errors.Is(err, customer.ErrNotFound) {
		cust, err = a.stores.Customers.Create(c, auth0ID)
	}
	if err != nil {
		logger.ErrorContext(c, "failed to resolve customer", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}

	return cust, true
}

// requireAdmin resolves the caller and rejects non-administrators.
func (a *API) requireAdmin(c *gin.Context) (*customer.Customer, bool) {
	cust, ok := a.currentCustomer(c)
	if !ok {
		return nil, false
	}
	if !cust.Admin {
		c.JSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": "Administrator access required"})
		return nil, false
	}
	return cust, true
}
