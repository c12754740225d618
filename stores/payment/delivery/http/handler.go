package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/delivery"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/payment"
	"github.com/hoanm/simple-marketplace/middleware"
	authMiddleware "github.com/hoanm/simple-marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	payment payment.Router
}

// New mounts the payment allow-list endpoints. The usecase enforces that only
// the config owner may extend the allow-list.
func New(e *echo.Echo, paymentRouter payment.Router, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{paymentRouter}

	g := e.Group("/paytokens")

	g.POST("", h.allowPaymentToken, authMiddleware.Auth())

	g.GET("/:contract", h.isAllowed, middleware.IsValidAddress("contract"))
}

func (h *handler) allowPaymentToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		ContractAddress domain.Address `json:"contractAddress"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.payment.AllowPaymentToken(ctx, address, p.ContractAddress); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) isAllowed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract domain.Address `param:"contract"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if allowed, err := h.payment.IsAllowed(ctx, p.Contract); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"allowed": allowed})
	}
}
