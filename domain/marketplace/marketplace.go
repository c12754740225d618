package marketplace

import (
	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/effect"
)

// Config is the process-wide marketplace configuration, set once at
// initialization and mutated only by explicit admin actions.
type Config struct {
	Owner            domain.Address `json:"owner" bson:"owner"`
	CollectionCodeId uint64         `json:"collectionCodeId" bson:"collectionCodeId"`
}

type ConfigRepo interface {
	Get(c ctx.Ctx) (*Config, error)
	Set(c ctx.Ctx, cfg *Config) error
}

// AllowedToken is one vetted fungible-token contract eligible as payment.
type AllowedToken struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
}

// AllowedTokenRepo is the payment allow-list: append-only, no removal.
type AllowedTokenRepo interface {
	Add(c ctx.Ctx, contract domain.Address) error
	Contains(c ctx.Ctx, contract domain.Address) (bool, error)
}

// Collection maps a spawned collection contract to the account allowed to
// mint on it.
type Collection struct {
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	Minter          domain.Address `json:"minter" bson:"minter"`
}

// CollectionRequest records a pending collection-spawn request until the host
// reports the instantiated contract back.
type CollectionRequest struct {
	RequestId uint64         `json:"requestId" bson:"requestId"`
	Requester domain.Address `json:"requester" bson:"requester"`
}

type CollectionRepo interface {
	// NextRequestId hands out monotonically increasing spawn-request ids.
	NextRequestId(c ctx.Ctx) (uint64, error)
	SaveRequest(c ctx.Ctx, req *CollectionRequest) error
	GetRequest(c ctx.Ctx, requestId uint64) (*CollectionRequest, error)
	RemoveRequest(c ctx.Ctx, requestId uint64) error
	SaveCollection(c ctx.Ctx, collection *Collection) error
	GetCollection(c ctx.Ctx, contract domain.Address) (*Collection, error)
}

// UseCase covers marketplace administration: configuration, collection
// spawning and mint authorization.
type UseCase interface {
	InitConfig(c ctx.Ctx, cfg *Config) error
	GetConfig(c ctx.Ctx) (*Config, error)
	CreateCollection(c ctx.Ctx, call domain.CallInfo, name, symbol string) (*effect.Result, error)
	// HandleCollectionInstantiated is the asynchronous completion callback of
	// CreateCollection, committed as its own independent call.
	HandleCollectionInstantiated(c ctx.Ctx, requestId uint64, contract domain.Address) (*effect.Result, error)
	MintNft(c ctx.Ctx, call domain.CallInfo, contract domain.Address, tokenId domain.TokenId, tokenUri string) (*effect.Result, error)
}
