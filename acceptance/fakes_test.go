package acceptance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/booking"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/coupon"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/customer"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/rental"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/vehicle"
)

// In-memory stores satisfying the api store interfaces. They mirror the
// repository contracts: same sentinel errors, and UpdateStatus enforces the
// lifecycle exactly like the SQL implementation.

type fakeStores struct {
	Services  *fakeServiceStore
	Bookings  *fakeBookingStore
	Vehicles  *fakeVehicleStore
	Fleet     *fakeFleetStore
	Coupons   *fakeCouponStore
	Customers *fakeCustomerStore
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		Services:  &fakeServiceStore{},
		Bookings:  &fakeBookingStore{},
		Vehicles:  &fakeVehicleStore{},
		Fleet:     &fakeFleetStore{},
		Coupons:   &fakeCouponStore{},
		Customers: &fakeCustomerStore{},
	}
}

type fakeServiceStore struct {
	mu       sync.Mutex
	services []service.Service
}

func (s *fakeServiceStore) List(context.Context) ([]service.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]service.Service(nil), s.services...), nil
}

func (s *fakeServiceStore) GetByID(_ context.Context, id uuid.UUID) (service.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return service.Service{}, service.ErrNotFound
}

func (s *fakeServiceStore) GetByType(_ context.Context, t service.Type) (service.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.services {
		if svc.Type == t {
			return svc, nil
		}
	}
	return service.Service{}, service.ErrNotFound
}

func (s *fakeServiceStore) Create(_ context.Context, svc *service.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = uuid.New()
	svc.CreatedAt = time.Now()
	s.services = append(s.services, *svc)
	return nil
}

func (s *fakeServiceStore) Update(_ context.Context, svc *service.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.services {
		if existing.ID == svc.ID {
			svc.Type = existing.Type
			svc.CreatedAt = existing.CreatedAt
			s.services[i] = *svc
			return nil
		}
	}
	return service.ErrNotFound
}

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []booking.Booking
}

func (s *fakeBookingStore) Create(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *fakeBookingStore) GetByID(_ context.Context, id uuid.UUID) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return booking.Booking{}, booking.ErrNotFound
}

func (s *fakeBookingStore) GetByCustomerID(_ context.Context, customerID uuid.UUID, status *booking.Status) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []booking.Booking
	for _, b := range s.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeBookingStore) List(_ context.Context, status *booking.Status) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []booking.Booking
	for _, b := range s.bookings {
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeBookingStore) UpdateStatus(_ context.Context, id uuid.UUID, target booking.Status, adminNotes *string) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		if err := booking.Transition(b.Status, target); err != nil {
			return booking.Booking{}, err
		}
		b.Status = target
		if adminNotes != nil {
			b.AdminNotes.String = *adminNotes
			b.AdminNotes.Valid = *adminNotes != ""
		}
		s.bookings[i] = b
		return b, nil
	}
	return booking.Booking{}, booking.ErrNotFound
}

type fakeVehicleStore struct {
	mu       sync.Mutex
	vehicles []vehicle.Vehicle
}

func (s *fakeVehicleStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]vehicle.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []vehicle.Vehicle
	for _, v := range s.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *fakeVehicleStore) GetByID(_ context.Context, id uuid.UUID) (vehicle.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return vehicle.Vehicle{}, vehicle.ErrNotFound
}

func (s *fakeVehicleStore) Create(_ context.Context, v *vehicle.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	s.vehicles = append(s.vehicles, *v)
	return nil
}

type fakeFleetStore struct {
	mu       sync.Mutex
	vehicles []rental.Vehicle
}

func (s *fakeFleetStore) List(_ context.Context, vehicleType *string) ([]rental.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []rental.Vehicle
	for _, v := range s.vehicles {
		if vehicleType != nil && v.Type != *vehicleType {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *fakeFleetStore) GetByID(_ context.Context, id uuid.UUID) (rental.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return rental.Vehicle{}, rental.ErrNotFound
}

func (s *fakeFleetStore) Create(_ context.Context, v *rental.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = uuid.New()
	v.CreatedAt = time.Now()
	s.vehicles = append(s.vehicles, *v)
	return nil
}

func (s *fakeFleetStore) Update(_ context.Context, v *rental.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.vehicles {
		if existing.ID == v.ID {
			v.Type = existing.Type
			v.CreatedAt = existing.CreatedAt
			s.vehicles[i] = *v
			return nil
		}
	}
	return rental.ErrNotFound
}

type fakeCouponStore struct {
	mu      sync.Mutex
	coupons []coupon.Coupon
}

func (s *fakeCouponStore) GetByCode(_ context.Context, code string) (coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return coupon.Coupon{}, coupon.ErrNotFound
}

func (s *fakeCouponStore) List(context.Context) ([]coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]coupon.Coupon(nil), s.coupons...), nil
}

func (s *fakeCouponStore) Create(_ context.Context, c *coupon.Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	s.coupons = append(s.coupons, *c)
	return nil
}

type fakeCustomerStore struct {
	mu        sync.Mutex
	customers []customer.Customer
}

func (s *fakeCustomerStore) GetByAuth0ID(_ context.Context, auth0ID string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.Auth0ID == auth0ID {
			cc := c
			return &cc, nil
		}
	}
	return nil, customer.ErrNotFound
}

func (s *fakeCustomerStore) Create(_ context.Context, auth0ID string) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := customer.Customer{ID: uuid.New(), Auth0ID: auth0ID, CreatedAt: time.Now()}
	s.customers = append(s.customers, c)
	return &c, nil
}

func (s *fakeCustomerStore) List(context.Context) ([]customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]customer.Customer(nil), s.customers...), nil
}

// addAdmin seeds an administrator account.
func (s *fakeCustomerStore) addAdmin(auth0ID string) customer.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := customer.Customer{ID: uuid.New(), Auth0ID: auth0ID, Admin: true, CreatedAt: time.Now()}
	s.customers = append(s.customers, c)
	return c
}
