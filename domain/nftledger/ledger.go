// Package nftledger declares the read interface this core requires from the
// external NFT sub-ledger. Transfers are never executed here; they are
// described as effects and executed by the host.
package nftledger

import (
	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/listing"
)

type Ledger interface {
	// OwnerOf returns the current owner of the token.
	OwnerOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)

	// ApprovalOf returns the expiry of spender's transfer approval for the
	// token, including approvals that have already expired. Errors when no
	// approval exists at all.
	ApprovalOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, spender domain.Address) (listing.Expiration, error)

	// Minter returns the account allowed to mint on the collection.
	Minter(c ctx.Ctx, contract domain.Address) (domain.Address, error)
}
