package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/middleware"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/vehicle"
)

type vehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"licensePlate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toVehicleResponse(v vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		CreatedAt:    v.CreatedAt,
	}
}

func (a *API) getVehiclesHandler(c *gin.Context) {
	cust, ok := a.currentCustomer(c)
	if !ok {
		return
	}

	vehicles, err := a.stores.Vehicles.ListByOwner(c, cust.ID)
	if err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to list vehicles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	responses := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, toVehicleResponse(v))
	}
	c.JSON(http.StatusOK, responses)
}

func (a *API) createVehicleHandler(c *gin.Context) {
	cust, ok := a.currentCustomer(c)
	if !ok {
		return
	}

	var req newVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	v := vehicle.Vehicle{
		OwnerID:      cust.ID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
	}
	if err := a.stores.Vehicles.Create(c, &v); err != nil {
		middleware.GetLogger(c).ErrorContext(c, "failed to create vehicle", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, toVehicleResponse(v))
}
