package listing

import (
	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/asset"
	"github.com/hoanm/simple-marketplace/domain/effect"
)

// Id is the listing key. At most one active listing exists per id; a new list
// call on the same id fully replaces the previous entry.
type Id struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// ListingConfig is the seller-provided price and optional validity window.
type ListingConfig struct {
	Price     asset.PaymentAsset `json:"price" bson:"price"`
	StartTime *Expiration        `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime   *Expiration        `json:"endTime,omitempty" bson:"endTime,omitempty"`
}

// Validate requires a positive price and, when both bounds are set,
// start_time < end_time.
func (c ListingConfig) Validate() error {
	if err := c.Price.Validate(); err != nil {
		return err
	}
	if c.StartTime != nil && c.EndTime != nil && !c.StartTime.Before(*c.EndTime) {
		return domain.ErrInvalidListingConfig
	}
	return nil
}

type OrderType string

const (
	OrderTypeListing OrderType = "LISTING"
	OrderTypeOffer   OrderType = "OFFER"
)

type ItemType string

const (
	ItemTypeNative ItemType = "NATIVE"
	ItemTypeToken  ItemType = "TOKEN"
	ItemTypeNft    ItemType = "NFT"
)

// OfferItem is one asset the order owner gives up. StartAmount and EndAmount
// are kept separate for future declining-price support; fixed-price orders
// store them equal.
type OfferItem struct {
	ItemType    ItemType    `json:"itemType" bson:"itemType"`
	Item        asset.Asset `json:"item" bson:"item"`
	StartAmount string      `json:"startAmount" bson:"startAmount"`
	EndAmount   string      `json:"endAmount" bson:"endAmount"`
}

// ConsiderationItem is one asset the order owner demands, paid to Recipient.
type ConsiderationItem struct {
	ItemType    ItemType       `json:"itemType" bson:"itemType"`
	Item        asset.Asset    `json:"item" bson:"item"`
	StartAmount string         `json:"startAmount" bson:"startAmount"`
	EndAmount   string         `json:"endAmount" bson:"endAmount"`
	Recipient   domain.Address `json:"recipient" bson:"recipient"`
}

// Order is the stored listing record. It is the generalized offer /
// consideration form; fixed-price listings carry exactly one NFT offer item
// and one payment consideration item.
type Order struct {
	OrderType       OrderType           `json:"orderType" bson:"orderType"`
	ContractAddress domain.Address      `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId      `json:"tokenId" bson:"tokenId"`
	Owner           domain.Address      `json:"owner" bson:"owner"`
	Offer           []OfferItem         `json:"offer" bson:"offer"`
	Consideration   []ConsiderationItem `json:"consideration" bson:"consideration"`
	StartTime       *Expiration         `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime         *Expiration         `json:"endTime,omitempty" bson:"endTime,omitempty"`
}

func (o *Order) ToId() Id {
	return Id{ContractAddress: o.ContractAddress, TokenId: o.TokenId}
}

// IsStarted reports whether the validity window has opened at the given block.
func (o *Order) IsStarted(block domain.BlockInfo) bool {
	if o.StartTime == nil {
		return true
	}
	return o.StartTime.IsExpired(block)
}

// IsExpired reports whether the validity window has closed at the given block.
func (o *Order) IsExpired(block domain.BlockInfo) bool {
	if o.EndTime == nil {
		return false
	}
	return o.EndTime.IsExpired(block)
}

// PaymentPrice returns the payment view of the settled consideration item.
// Exactly one consideration item is settled per buy.
func (o *Order) PaymentPrice() (asset.PaymentAsset, error) {
	if len(o.Consideration) == 0 {
		return asset.PaymentAsset{}, domain.ErrInvalidListingConfig
	}
	return asset.ToPaymentAsset(o.Consideration[0].Item)
}

// PaymentRecipient is who receives the settled consideration item.
func (o *Order) PaymentRecipient() domain.Address {
	if len(o.Consideration) == 0 {
		return domain.EmptyAddress
	}
	return o.Consideration[0].Recipient
}

// NewFixedPriceListing builds the stored order for a fixed-price listing: the
// NFT as the single offer item and the price as the single consideration item
// paid to the seller.
func NewFixedPriceListing(id Id, seller domain.Address, cfg ListingConfig) *Order {
	price := cfg.Price.ToAsset()
	itemType := ItemTypeNative
	if cfg.Price.Kind == asset.PaymentKindToken {
		itemType = ItemTypeToken
	}
	return &Order{
		OrderType:       OrderTypeListing,
		ContractAddress: id.ContractAddress,
		TokenId:         id.TokenId,
		Owner:           seller,
		Offer: []OfferItem{
			{
				ItemType:    ItemTypeNft,
				Item:        asset.FromNft(asset.NftAsset{ContractAddress: id.ContractAddress, TokenId: id.TokenId}),
				StartAmount: "1",
				EndAmount:   "1",
			},
		},
		Consideration: []ConsiderationItem{
			{
				ItemType:    itemType,
				Item:        price,
				StartAmount: cfg.Price.Amount,
				EndAmount:   cfg.Price.Amount,
				Recipient:   seller,
			},
		},
		StartTime: cfg.StartTime,
		EndTime:   cfg.EndTime,
	}
}

const (
	// DefaultLimit is both the default and the maximum page size of
	// listings-by-collection queries.
	DefaultLimit int32 = 30
)

type FindAllOptions struct {
	ContractAddress *domain.Address
	StartAfter      *domain.TokenId
	Limit           *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithContractAddress(address domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ContractAddress = &address
		return nil
	}
}

// WithStartAfter restricts results to token ids strictly greater than the
// cursor, for pagination.
func WithStartAfter(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.StartAfter = &tokenId
		return nil
	}
}

func WithLimit(limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

// Repo is the listing registry: the primary store keyed by Id plus the
// collection-address index for range scans.
type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Order, error)
	Upsert(c ctx.Ctx, order *Order) error
	Remove(c ctx.Ctx, id Id) error
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Order, error)
}

// Transactional runs fn inside one all-or-nothing transaction; any error
// discards every mutation fn performed.
type Transactional interface {
	RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error
}

// UseCase is the settlement engine surface.
type UseCase interface {
	List(c ctx.Ctx, call domain.CallInfo, block domain.BlockInfo, nft asset.NftAsset, cfg ListingConfig) (*effect.Result, error)
	Buy(c ctx.Ctx, call domain.CallInfo, block domain.BlockInfo, nft asset.NftAsset) (*effect.Result, error)
	Cancel(c ctx.Ctx, call domain.CallInfo, block domain.BlockInfo, nft asset.NftAsset) (*effect.Result, error)
	GetListing(c ctx.Ctx, id Id) (*Order, error)
	GetListingsByContractAddress(c ctx.Ctx, address domain.Address, opts ...FindAllOptionsFunc) ([]*Order, error)
}
