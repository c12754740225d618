package usecase

import (
	"encoding/json"

	bctx "github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/asset"
	"github.com/hoanm/simple-marketplace/domain/effect"
	"github.com/hoanm/simple-marketplace/domain/listing"
	"github.com/hoanm/simple-marketplace/domain/nftledger"
	"github.com/hoanm/simple-marketplace/domain/payment"
)

type ListingUseCaseCfg struct {
	ListingRepo        listing.Repo
	NftLedger          nftledger.Ledger
	PaymentRouter      payment.Router
	Transactional      listing.Transactional
	MarketplaceAddress domain.Address
}

type impl struct {
	listingRepo        listing.Repo
	nftLedger          nftledger.Ledger
	paymentRouter      payment.Router
	transactional      listing.Transactional
	marketplaceAddress domain.Address
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:        cfg.ListingRepo,
		nftLedger:          cfg.NftLedger,
		paymentRouter:      cfg.PaymentRouter,
		transactional:      cfg.Transactional,
		marketplaceAddress: cfg.MarketplaceAddress,
	}
}

// List registers a fixed-price listing. Relisting the same token fully
// replaces the previous entry.
func (im *impl) List(ctx bctx.Ctx, call domain.CallInfo, block domain.BlockInfo, nft asset.NftAsset, cfg listing.ListingConfig) (*effect.Result, error) {
	if nft.TokenId == "" {
		return nil, domain.ErrTokenIdRequired
	}

	if err := cfg.Validate(); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": cfg,
		}).Warn("invalid listing config")
		return nil, err
	}

	owner, err := im.nftLedger.OwnerOf(ctx, nft.ContractAddress, nft.TokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": nft.ContractAddress,
			"tokenId":  nft.TokenId,
		}).Error("nftLedger.OwnerOf failed")
		return nil, err
	}
	if !owner.Equals(call.Caller) {
		return nil, domain.ErrUnauthorized
	}

	// the marketplace needs a transfer approval that can never lapse while the
	// listing is live, otherwise a buy could fail after payment routing
	approval, err := im.nftLedger.ApprovalOf(ctx, nft.ContractAddress, nft.TokenId, im.marketplaceAddress)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": nft.ContractAddress,
			"tokenId":  nft.TokenId,
		}).Warn("no marketplace approval found")
		return nil, domain.ErrNeverExpiredApprovalRequired
	}
	if !approval.IsNever() {
		return nil, domain.ErrUnauthorized
	}

	if cfg.Price.Kind == asset.PaymentKindToken {
		allowed, err := im.paymentRouter.IsAllowed(ctx, cfg.Price.ContractAddress)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"contract": cfg.Price.ContractAddress,
			}).Error("paymentRouter.IsAllowed failed")
			return nil, err
		}
		if !allowed {
			return nil, domain.ErrPaymentTokenNotAllowed
		}
	}

	order := listing.NewFixedPriceListing(listing.Id{ContractAddress: nft.ContractAddress, TokenId: nft.TokenId}, call.Caller, cfg)

	err = im.transactional.RunWithTransaction(ctx, func(c bctx.Ctx) error {
		return im.listingRepo.Upsert(c, order)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"order": *order,
		}).Error("listingRepo.Upsert failed")
		return nil, err
	}

	cfgJson, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	return effect.NewResult().
		AddAttribute("method", "list").
		AddAttribute("contractAddress", string(nft.ContractAddress)).
		AddAttribute("tokenId", string(nft.TokenId)).
		AddAttribute("seller", string(call.Caller)).
		AddAttribute("listingConfig", string(cfgJson)), nil
}

// Buy settles a listing: the caller pays the recorded price, the seller loses
// the token, and the listing is consumed so no second buy can match it.
func (im *impl) Buy(ctx bctx.Ctx, call domain.CallInfo, block domain.BlockInfo, nft asset.NftAsset) (*effect.Result, error) {
	if nft.TokenId == "" {
		return nil, domain.ErrTokenIdRequired
	}

	id := listing.Id{ContractAddress: nft.ContractAddress, TokenId: nft.TokenId}
	order, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("listingRepo.FindOne failed")
		}
		return nil, err
	}

	if order.Owner.Equals(call.Caller) {
		return nil, domain.ErrSelfPurchase
	}
	if !order.IsStarted(block) {
		return nil, domain.ErrListingNotStarted
	}
	if order.IsExpired(block) {
		return nil, domain.ErrListingEnded
	}

	price, err := order.PaymentPrice()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("order.PaymentPrice failed")
		return nil, err
	}

	payEffects, err := im.paymentRouter.Route(ctx, price, call.Caller, order.PaymentRecipient(), call.Funds)
	if err != nil {
		return nil, err
	}

	err = im.transactional.RunWithTransaction(ctx, func(c bctx.Ctx) error {
		return im.listingRepo.Remove(c, id)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingRepo.Remove failed")
		return nil, err
	}

	return effect.NewResult().
		AddEffect(effect.TransferNft(nft.ContractAddress, nft.TokenId, call.Caller)).
		AddEffects(payEffects).
		AddAttribute("method", "buy").
		AddAttribute("contractAddress", string(nft.ContractAddress)).
		AddAttribute("tokenId", string(nft.TokenId)).
		AddAttribute("seller", string(order.Owner)).
		AddAttribute("buyer", string(call.Caller)).
		AddAttribute("price", price.Amount), nil
}

// Cancel removes a listing. Only the seller may cancel a live listing; once
// the window has closed anyone may sweep it.
func (im *impl) Cancel(ctx bctx.Ctx, call domain.CallInfo, block domain.BlockInfo, nft asset.NftAsset) (*effect.Result, error) {
	if nft.TokenId == "" {
		return nil, domain.ErrTokenIdRequired
	}

	id := listing.Id{ContractAddress: nft.ContractAddress, TokenId: nft.TokenId}
	order, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("listingRepo.FindOne failed")
		}
		return nil, err
	}

	if !order.IsExpired(block) && !order.Owner.Equals(call.Caller) {
		return nil, domain.ErrUnauthorized
	}

	err = im.transactional.RunWithTransaction(ctx, func(c bctx.Ctx) error {
		return im.listingRepo.Remove(c, id)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("listingRepo.Remove failed")
		return nil, err
	}

	return effect.NewResult().
		AddAttribute("method", "cancel").
		AddAttribute("contractAddress", string(nft.ContractAddress)).
		AddAttribute("tokenId", string(nft.TokenId)).
		AddAttribute("canceller", string(call.Caller)), nil
}

func (im *impl) GetListing(ctx bctx.Ctx, id listing.Id) (*listing.Order, error) {
	order, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("listingRepo.FindOne failed")
		}
		return nil, err
	}
	return order, nil
}

func (im *impl) GetListingsByContractAddress(ctx bctx.Ctx, address domain.Address, opts ...listing.FindAllOptionsFunc) ([]*listing.Order, error) {
	opts = append([]listing.FindAllOptionsFunc{listing.WithContractAddress(address)}, opts...)
	res, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("listingRepo.FindAll failed")
		return nil, err
	}
	return res, nil
}
