package acceptance

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/api"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/booking"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/coupon"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/customer"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/o11y"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/vehicle"
)

type TestServer struct {
	Router *gin.Engine
	Stores *fakeStores
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	stores := newFakeStores()

	obs, cleanup, err := o11y.Setup(context.Background(), "localhost:4318")
	if err != nil {
		t.Fatalf("failed to set up observability: %v", err)
	}
	t.Cleanup(cleanup)

	a := api.New(api.Stores{
		Services:  stores.Services,
		Bookings:  stores.Bookings,
		Vehicles:  stores.Vehicles,
		Fleet:     stores.Fleet,
		Coupons:   stores.Coupons,
		Customers: stores.Customers,
	}, obs, fakeAuthMiddleware(), "metrics", "metrics")

	return &TestServer{
		Router: a.Router(),
		Stores: stores,
	}
}

// fakeAuthMiddleware reads the caller identity from the X-User-ID header and
// injects it the same way the JWT middleware does, so the handlers' claim
// extraction works unchanged.
func fakeAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"})
			c.Abort()
			return
		}

		claims := &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: userID},
		}
		ctx := context.WithValue(c.Request.Context(), jwtmiddleware.ContextKey{}, claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Helper methods for making requests

func (ts *TestServer) GET(path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) POST(path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) PUT(path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// Seed helpers

func (ts *TestServer) CreateTestService(t *testing.T, typ service.Type, name string, price string) service.Service {
	t.Helper()
	svc := service.Service{
		Type:  typ,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	if err := ts.Stores.Services.Create(context.Background(), &svc); err != nil {
		t.Fatalf("failed to create test service: %v", err)
	}
	return svc
}

func (ts *TestServer) CreateTestCustomer(t *testing.T, auth0ID string) customer.Customer {
	t.Helper()
	c, err := ts.Stores.Customers.Create(context.Background(), auth0ID)
	if err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}
	return *c
}

func (ts *TestServer) CreateTestAdmin(t *testing.T, auth0ID string) customer.Customer {
	t.Helper()
	return ts.Stores.Customers.addAdmin(auth0ID)
}

func (ts *TestServer) CreateTestVehicle(t *testing.T, owner customer.Customer) vehicle.Vehicle {
	t.Helper()
	v := vehicle.Vehicle{
		OwnerID:      owner.ID,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		LicensePlate: "TEST-123",
	}
	if err := ts.Stores.Vehicles.Create(context.Background(), &v); err != nil {
		t.Fatalf("failed to create test vehicle: %v", err)
	}
	return v
}

func (ts *TestServer) CreateTestBooking(t *testing.T, cust customer.Customer, typ service.Type, status booking.Status) booking.Booking {
	t.Helper()
	b := booking.Booking{
		CustomerID:    cust.ID,
		ServiceType:   typ,
		Status:        status,
		ScheduledTime: time.Now().Add(24 * time.Hour),
		Price:         decimal.RequireFromString("20"),
	}
	if err := ts.Stores.Bookings.Create(context.Background(), &b); err != nil {
		t.Fatalf("failed to create test booking: %v", err)
	}
	return b
}

func (ts *TestServer) CreateTestCoupon(t *testing.T, code string, percent string, expires *time.Time) coupon.Coupon {
	t.Helper()
	c := coupon.Coupon{
		Code:            code,
		DiscountPercent: decimal.RequireFromString(percent),
	}
	if expires != nil {
		c.ExpiresAt.Time = *expires
		c.ExpiresAt.Valid = true
	}
	if err := ts.Stores.Coupons.Create(context.Background(), &c); err != nil {
		t.Fatalf("failed to create test coupon: %v", err)
	}
	return c
}
