package usecase

import (
	"fmt"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/effect"
	"github.com/hoanm/simple-marketplace/domain/marketplace"
	"github.com/hoanm/simple-marketplace/domain/nftledger"
)

type MarketplaceUseCaseCfg struct {
	ConfigRepo         marketplace.ConfigRepo
	CollectionRepo     marketplace.CollectionRepo
	NftLedger          nftledger.Ledger
	MarketplaceAddress domain.Address
}

type impl struct {
	configRepo         marketplace.ConfigRepo
	collectionRepo     marketplace.CollectionRepo
	nftLedger          nftledger.Ledger
	marketplaceAddress domain.Address
}

func New(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		configRepo:         cfg.ConfigRepo,
		collectionRepo:     cfg.CollectionRepo,
		nftLedger:          cfg.NftLedger,
		marketplaceAddress: cfg.MarketplaceAddress,
	}
}

// InitConfig seeds the marketplace configuration. It refuses to overwrite an
// existing one; admin fields never change after initialization.
func (im *impl) InitConfig(ctx ctx.Ctx, cfg *marketplace.Config) error {
	if cfg.Owner.IsEmpty() {
		return domain.ErrBadParamInput
	}

	_, err := im.configRepo.Get(ctx)
	if err == nil {
		return domain.ErrConflict
	} else if err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("configRepo.Get failed")
		return err
	}

	if err := im.configRepo.Set(ctx, cfg); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": *cfg,
		}).Error("configRepo.Set failed")
		return err
	}
	return nil
}

func (im *impl) GetConfig(ctx ctx.Ctx) (*marketplace.Config, error) {
	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("configRepo.Get failed")
		}
		return nil, err
	}
	return cfg, nil
}

// CreateCollection records a spawn request and asks the host to instantiate a
// new collection contract. The caller becomes the collection's minter once
// HandleCollectionInstantiated confirms the spawn.
func (im *impl) CreateCollection(ctx ctx.Ctx, call domain.CallInfo, name, symbol string) (*effect.Result, error) {
	if name == "" || symbol == "" {
		return nil, domain.ErrBadParamInput
	}

	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("configRepo.Get failed")
		return nil, err
	}

	requestId, err := im.collectionRepo.NextRequestId(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("collectionRepo.NextRequestId failed")
		return nil, err
	}

	req := &marketplace.CollectionRequest{RequestId: requestId, Requester: call.Caller}
	if err := im.collectionRepo.SaveRequest(ctx, req); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"req": *req,
		}).Error("collectionRepo.SaveRequest failed")
		return nil, err
	}

	return effect.NewResult().
		AddEffect(effect.InstantiateCollection(requestId, cfg.CollectionCodeId, name, symbol, im.marketplaceAddress, call.Caller)).
		AddAttribute("method", "createCollection").
		AddAttribute("requestId", fmt.Sprint(requestId)).
		AddAttribute("requester", string(call.Caller)), nil
}

// HandleCollectionInstantiated is the spawn completion callback. It verifies
// the new contract's minter against the recorded requester before admitting
// the collection; a forged callback cannot bind a foreign contract.
func (im *impl) HandleCollectionInstantiated(ctx ctx.Ctx, requestId uint64, contract domain.Address) (*effect.Result, error) {
	if contract.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	req, err := im.collectionRepo.GetRequest(ctx, requestId)
	if err == domain.ErrNotFound {
		return nil, domain.ErrUnauthorized
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"requestId": requestId,
		}).Error("collectionRepo.GetRequest failed")
		return nil, err
	}

	minter, err := im.nftLedger.Minter(ctx, contract)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Warn("minter query failed")
		return nil, domain.ErrUnauthorized
	}
	if !minter.Equals(req.Requester) {
		return nil, domain.ErrUnauthorized
	}

	col := &marketplace.Collection{ContractAddress: contract, Minter: req.Requester}
	if err := im.collectionRepo.SaveCollection(ctx, col); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": *col,
		}).Error("collectionRepo.SaveCollection failed")
		return nil, err
	}

	if err := im.collectionRepo.RemoveRequest(ctx, requestId); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"requestId": requestId,
		}).Error("collectionRepo.RemoveRequest failed")
		return nil, err
	}

	return effect.NewResult().
		AddAttribute("method", "collectionInstantiated").
		AddAttribute("contractAddress", string(contract)).
		AddAttribute("minter", string(req.Requester)), nil
}

// MintNft authorizes a mint on a spawned collection. Only the recorded minter
// may mint; unknown collections are refused outright.
func (im *impl) MintNft(ctx ctx.Ctx, call domain.CallInfo, contract domain.Address, tokenId domain.TokenId, tokenUri string) (*effect.Result, error) {
	if tokenId == "" {
		return nil, domain.ErrTokenIdRequired
	}

	col, err := im.collectionRepo.GetCollection(ctx, contract)
	if err == domain.ErrNotFound {
		return nil, domain.ErrUnauthorized
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("collectionRepo.GetCollection failed")
		return nil, err
	}

	if !col.Minter.Equals(call.Caller) {
		return nil, domain.ErrUnauthorized
	}

	return effect.NewResult().
		AddEffect(effect.MintNft(contract, tokenId, call.Caller, tokenUri)).
		AddAttribute("method", "mintNft").
		AddAttribute("contractAddress", string(contract)).
		AddAttribute("tokenId", string(tokenId)).
		AddAttribute("minter", string(call.Caller)), nil
}
