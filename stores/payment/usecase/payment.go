package usecase

import (
	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/asset"
	"github.com/hoanm/simple-marketplace/domain/effect"
	"github.com/hoanm/simple-marketplace/domain/marketplace"
	"github.com/hoanm/simple-marketplace/domain/payment"
)

type PaymentUseCaseCfg struct {
	AllowedTokenRepo marketplace.AllowedTokenRepo
	ConfigRepo       marketplace.ConfigRepo
}

type impl struct {
	allowedTokenRepo marketplace.AllowedTokenRepo
	configRepo       marketplace.ConfigRepo
}

func New(cfg *PaymentUseCaseCfg) payment.Router {
	return &impl{
		allowedTokenRepo: cfg.AllowedTokenRepo,
		configRepo:       cfg.ConfigRepo,
	}
}

// Route turns a payment obligation into transfer effects. Native payments
// must be covered exactly by the attached funds; token payments pull from the
// payer's balance and require the token to be allow-listed.
func (im *impl) Route(ctx ctx.Ctx, pay asset.PaymentAsset, payer, recipient domain.Address, funds []domain.Coin) (effect.Batch, error) {
	switch pay.Kind {
	case asset.PaymentKindNative:
		if len(funds) != 1 {
			return nil, domain.ErrInsufficientFunds
		}
		if funds[0].Denom != pay.Denom || !asset.AmountEquals(funds[0].Amount, pay.Amount) {
			return nil, domain.ErrInsufficientFunds
		}
		return effect.Batch{effect.BankSend(recipient, pay.Denom, pay.Amount)}, nil

	case asset.PaymentKindToken:
		allowed, err := im.IsAllowed(ctx, pay.ContractAddress)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, domain.ErrPaymentTokenNotAllowed
		}
		return effect.Batch{effect.TokenTransferFrom(pay.ContractAddress, payer, recipient, pay.Amount)}, nil

	default:
		return nil, domain.ErrBadParamInput
	}
}

func (im *impl) IsAllowed(ctx ctx.Ctx, contract domain.Address) (bool, error) {
	allowed, err := im.allowedTokenRepo.Contains(ctx, contract)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("allowedTokenRepo.Contains failed")
		return false, err
	}
	return allowed, nil
}

// AllowPaymentToken adds a fungible-token contract to the payment allow-list.
// Only the marketplace owner may do so; re-adding is a no-op.
func (im *impl) AllowPaymentToken(ctx ctx.Ctx, caller, contract domain.Address) (*effect.Result, error) {
	if contract.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	cfg, err := im.configRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("configRepo.Get failed")
		return nil, err
	}
	if !cfg.Owner.Equals(caller) {
		return nil, domain.ErrUnauthorized
	}

	if err := im.allowedTokenRepo.Add(ctx, contract); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("allowedTokenRepo.Add failed")
		return nil, err
	}

	return effect.NewResult().
		AddAttribute("method", "allowPaymentToken").
		AddAttribute("contractAddress", string(contract)), nil
}
