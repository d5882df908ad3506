package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/coupon"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/internal/middleware"
	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

type couponResponse struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	ExpiresAt       *time.Time      `json:"expiresAt,omitempty"`
	ServiceType     string          `json:"serviceType,omitempty"`
	Valid           bool            `json:"valid"`
}

// couponHandler is an advisory lookup: it reports whether a code exists and
// whether it would apply, but submission never checks it and no discount is
// applied to computed prices.
func (a *API) couponHandler(c *gin.Context) {
	cpn, err := a.stores.Coupons.GetByCode(c, c.Param("code"))
	if err != nil {
		if errors.Is(err, coupon.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": "COUPON_NOT_FOUND", "message": "Coupon not found"})
			return
		}
		middleware.GetLogger(c).ErrorContext(c, "failed to get coupon", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	valid := !cpn.ExpiresAt.Valid || cpn.ExpiresAt.Time.After(time.Now())
	if t, ok := service.ParseType(c.Query("serviceType")); ok {
		valid = cpn.ValidAt(time.Now(), t)
	}

	resp := couponResponse{
		Code:            cpn.Code,
		DiscountPercent: cpn.DiscountPercent,
		ServiceType:     cpn.ServiceType.String,
		Valid:           valid,
	}
	if cpn.ExpiresAt.Valid {
		resp.ExpiresAt = &cpn.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, resp)
}
