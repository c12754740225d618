package asset

import (
	"github.com/shopspring/decimal"

	"github.com/hoanm/simple-marketplace/domain"
)

// Kind discriminates the typed asset variants. Amounts are base-10 integer
// strings in the smallest unit of the asset.
type Kind string

const (
	KindNative Kind = "native"
	KindToken  Kind = "token"
	KindNft    Kind = "nft"
)

// NftAsset points to a single token of an NFT collection contract. TokenId is
// optional in the wire shape; operations that need one validate its presence.
type NftAsset struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type NativeAsset struct {
	Denom  string `json:"denom" bson:"denom"`
	Amount string `json:"amount" bson:"amount"`
}

type TokenAsset struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	Amount          string         `json:"amount" bson:"amount"`
}

// Asset is the generic "offer leg" view covering every listable or payable
// asset variant.
type Asset struct {
	Kind            Kind           `json:"kind" bson:"kind"`
	Denom           string         `json:"denom,omitempty" bson:"denom,omitempty"`
	ContractAddress domain.Address `json:"contractAddress,omitempty" bson:"contractAddress,omitempty"`
	TokenId         domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	Amount          string         `json:"amount,omitempty" bson:"amount,omitempty"`
}

func FromNft(a NftAsset) Asset {
	return Asset{Kind: KindNft, ContractAddress: a.ContractAddress, TokenId: a.TokenId}
}

func FromNative(a NativeAsset) Asset {
	return Asset{Kind: KindNative, Denom: a.Denom, Amount: a.Amount}
}

func FromToken(a TokenAsset) Asset {
	return Asset{Kind: KindToken, ContractAddress: a.ContractAddress, Amount: a.Amount}
}

// PaymentKind is the subset of asset kinds accepted as payment.
type PaymentKind string

const (
	PaymentKindNative PaymentKind = "native"
	PaymentKindToken  PaymentKind = "token"
)

// PaymentAsset is the "payment leg" view of an asset: native currency or a
// fungible token contract.
type PaymentAsset struct {
	Kind            PaymentKind    `json:"kind" bson:"kind"`
	Denom           string         `json:"denom,omitempty" bson:"denom,omitempty"`
	ContractAddress domain.Address `json:"contractAddress,omitempty" bson:"contractAddress,omitempty"`
	Amount          string         `json:"amount" bson:"amount"`
}

// Validate checks the payment asset shape and requires a positive amount.
func (p PaymentAsset) Validate() error {
	switch p.Kind {
	case PaymentKindNative:
		if p.Denom == "" {
			return domain.ErrInvalidListingConfig
		}
	case PaymentKindToken:
		if p.ContractAddress.IsEmpty() {
			return domain.ErrInvalidListingConfig
		}
	default:
		return domain.ErrInvalidListingConfig
	}
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return domain.ErrInvalidNumberFormat
	}
	if !amount.IsPositive() {
		return domain.ErrInvalidListingConfig
	}
	return nil
}

func (p PaymentAsset) ToAsset() Asset {
	switch p.Kind {
	case PaymentKindToken:
		return Asset{Kind: KindToken, ContractAddress: p.ContractAddress, Amount: p.Amount}
	default:
		return Asset{Kind: KindNative, Denom: p.Denom, Amount: p.Amount}
	}
}

// ToPaymentAsset converts the generic view back to the payment view. Fails for
// NFT assets since they can never pay for anything.
func ToPaymentAsset(a Asset) (PaymentAsset, error) {
	switch a.Kind {
	case KindNative:
		return PaymentAsset{Kind: PaymentKindNative, Denom: a.Denom, Amount: a.Amount}, nil
	case KindToken:
		return PaymentAsset{Kind: PaymentKindToken, ContractAddress: a.ContractAddress, Amount: a.Amount}, nil
	default:
		return PaymentAsset{}, domain.ErrBadParamInput
	}
}

// AmountEquals compares two integer-string amounts numerically.
func AmountEquals(a, b string) bool {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return false
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return false
	}
	return da.Equal(db)
}
