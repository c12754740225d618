package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/delivery"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/asset"
	"github.com/hoanm/simple-marketplace/domain/listing"
	"github.com/hoanm/simple-marketplace/middleware"
	"github.com/hoanm/simple-marketplace/service/chain"
	authMiddleware "github.com/hoanm/simple-marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.UseCase
	chain   chain.Client
}

// New mounts the listing endpoints. Mutating endpoints require auth; the
// authenticated address acts as the caller of the settlement operation.
func New(
	e *echo.Echo,
	listingUseCase listing.UseCase,
	chainClient chain.Client,
	authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listingUseCase, chainClient}

	gs := e.Group("/listings")

	gs.POST("", h.list, authMiddleware.Auth())

	gs.POST("/buy", h.buy, authMiddleware.Auth())

	gs.POST("/cancel", h.cancel, authMiddleware.Auth())

	gs.GET("/:contract", h.getByContract, middleware.IsValidAddress("contract"), middleware.CacheHttp(30*time.Second))

	gs.GET("/:contract/:tokenId", h.get, middleware.IsValidAddress("contract"), middleware.CacheHttp(30*time.Second))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		ContractAddress domain.Address        `json:"contractAddress"`
		TokenId         domain.TokenId        `json:"tokenId"`
		Config          listing.ListingConfig `json:"config"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	block, err := h.chain.LatestBlock(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	call := domain.CallInfo{Caller: address}
	nft := asset.NftAsset{ContractAddress: p.ContractAddress, TokenId: p.TokenId}

	if res, err := h.listing.List(ctx, call, block, nft, p.Config); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		ContractAddress domain.Address `json:"contractAddress"`
		TokenId         domain.TokenId `json:"tokenId"`
		Funds           []domain.Coin  `json:"funds"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	block, err := h.chain.LatestBlock(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	call := domain.CallInfo{Caller: address, Funds: p.Funds}
	nft := asset.NftAsset{ContractAddress: p.ContractAddress, TokenId: p.TokenId}

	if res, err := h.listing.Buy(ctx, call, block, nft); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		ContractAddress domain.Address `json:"contractAddress"`
		TokenId         domain.TokenId `json:"tokenId"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	block, err := h.chain.LatestBlock(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	call := domain.CallInfo{Caller: address}
	nft := asset.NftAsset{ContractAddress: p.ContractAddress, TokenId: p.TokenId}

	if res, err := h.listing.Cancel(ctx, call, block, nft); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract domain.Address `param:"contract"`
		TokenId  domain.TokenId `param:"tokenId"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := listing.Id{ContractAddress: p.Contract, TokenId: p.TokenId}

	if res, err := h.listing.GetListing(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getByContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Contract   domain.Address  `param:"contract"`
		StartAfter *domain.TokenId `query:"startAfter"`
		Limit      *int32          `query:"limit"`
	}

	p := params{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.StartAfter != nil {
		opts = append(opts, listing.WithStartAfter(*p.StartAfter))
	}

	if p.Limit != nil {
		opts = append(opts, listing.WithLimit(*p.Limit))
	}

	if res, err := h.listing.GetListingsByContractAddress(ctx, p.Contract, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
