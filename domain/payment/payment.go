package payment

import (
	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/asset"
	"github.com/hoanm/simple-marketplace/domain/effect"
)

// Router converts a payment-asset specification into the matching ledger
// transfer effect.
type Router interface {
	// Route returns the transfer effects moving the payment from payer to
	// recipient. Native payments require funds to exactly equal the price;
	// token payments require the contract to be allow-listed and pull from the
	// payer's pre-granted allowance.
	Route(c ctx.Ctx, payment asset.PaymentAsset, payer, recipient domain.Address, funds []domain.Coin) (effect.Batch, error)

	// IsAllowed reports allow-list membership of a fungible-token contract.
	IsAllowed(c ctx.Ctx, contract domain.Address) (bool, error)

	// AllowPaymentToken appends a token contract to the allow-list.
	// Config-owner only, idempotent.
	AllowPaymentToken(c ctx.Ctx, caller, contract domain.Address) (*effect.Result, error)
}
