package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/delivery"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/marketplace"
	"github.com/hoanm/simple-marketplace/middleware"
	authMiddleware "github.com/hoanm/simple-marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

// New mounts marketplace administration endpoints: config, collection
// spawning with its instantiation callback, and minting.
func New(e *echo.Echo, marketplaceUseCase marketplace.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{marketplaceUseCase}

	g := e.Group("/marketplace")

	g.GET("/config", h.getConfig, middleware.CacheHttp(1*time.Minute))

	g.POST("/config", h.initConfig, authMiddleware.Auth(), authMiddleware.IsAdmin())

	gs := e.Group("/collections")

	gs.POST("", h.createCollection, authMiddleware.Auth())

	// the host reports a finished collection spawn here. The usecase checks
	// the contract's minter against the recorded requester, so the route can
	// stay open.
	gs.POST("/instantiated", h.collectionInstantiated)

	e.POST("/nfts/mint", h.mintNft, authMiddleware.Auth())
}

func (h *handler) getConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.marketplace.GetConfig(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) initConfig(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &marketplace.Config{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.InitConfig(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

func (h *handler) createCollection(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	call := domain.CallInfo{Caller: address}

	if res, err := h.marketplace.CreateCollection(ctx, call, p.Name, p.Symbol); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) collectionInstantiated(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		RequestId       uint64         `json:"requestId"`
		ContractAddress domain.Address `json:"contractAddress"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.marketplace.HandleCollectionInstantiated(ctx, p.RequestId, p.ContractAddress); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) mintNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		ContractAddress domain.Address `json:"contractAddress"`
		TokenId         domain.TokenId `json:"tokenId"`
		TokenUri        string         `json:"tokenUri"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	call := domain.CallInfo{Caller: address}

	if res, err := h.marketplace.MintNft(ctx, call, p.ContractAddress, p.TokenId, p.TokenUri); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
