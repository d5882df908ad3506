package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/middleware"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/rental"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

type serviceResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Type            service.Type    `json:"type"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes *int32          `json:"durationMinutes,omitempty"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toServiceResponse(s service.Service) serviceResponse {
	resp := serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Type:        s.Type,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
	}
	if s.DurationMinutes.Valid {
		resp.DurationMinutes = &s.DurationMinutes.Int32
	}
	return resp
}

func (a *API) servicesHandler(c *gin.Context) {
	services, err := a.stores.Services.List(c)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to list services", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		responses = append(responses, toServiceResponse(s))
	}
	c.JSON(http.StatusOK, responses)
}

func (a *API) serviceHandler(c *gin.Context) {
	t, ok := service.ParseType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "Unknown service type"})
		return
	}

	s, err := a.stores.Services.GetByType(c, t)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// Bus charters are bookable without a catalogue row.
			if t == service.BusService {
				c.JSON(http.StatusOK, toServiceResponse(service.SyntheticBusCharter()))
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"code": "SERVICE_NOT_FOUND", "message": "Service not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to get service", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, toServiceResponse(s))
}

type fleetVehicleResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	SeatingCapacity int             `json:"seatingCapacity"`
	PricePerDay     decimal.Decimal `json:"pricePerDay"`
	Availability    string          `json:"availability"`
}

func toFleetVehicleResponse(v rental.Vehicle) fleetVehicleResponse {
	return fleetVehicleResponse{
		ID:              v.ID,
		Name:            v.Name,
		Type:            v.Type,
		SeatingCapacity: v.SeatingCapacity,
		PricePerDay:     v.PricePerDay,
		Availability:    v.Availability,
	}
}

func (a *API) fleetHandler(c *gin.Context) {
	vehicleType := c.Query("type")
	var typePtr *string
	if vehicleType != "" {
		typePtr = &vehicleType
	}

	vehicles, err := a.stores.Fleet.List(c, typePtr)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to list fleet", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]fleetVehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, toFleetVehicleResponse(v))
	}
	c.JSON(http.StatusOK, responses)
}
