package chain

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/listing"
)

var (
	ErrStatusCodeNotOk    = errors.New("http.status != 200")
	ErrUnknownExpiration  = errors.New("unknown approval expiration shape")
	ErrEmptyQueryResponse = errors.New("empty smart query response")
)

// Client reads token ownership, approvals and minter assignments from the
// chain node's LCD endpoint. It satisfies nftledger.Ledger and additionally
// exposes the latest block for call envelopes that omit one.
type Client interface {
	OwnerOf(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	ApprovalOf(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, spender domain.Address) (listing.Expiration, error)
	Minter(c bCtx.Ctx, contract domain.Address) (domain.Address, error)
	LatestBlock(c bCtx.Ctx) (domain.BlockInfo, error)
}

type ClientCfg struct {
	HttpClient http.Client
	LcdUrl     string
	Timeout    time.Duration
}

type smartQueryResp struct {
	Data json.RawMessage `json:"data"`
}

type ownerOfQuery struct {
	OwnerOf struct {
		TokenId        string `json:"token_id"`
		IncludeExpired bool   `json:"include_expired"`
	} `json:"owner_of"`
}

type ownerOfResp struct {
	Owner domain.Address `json:"owner"`
}

type approvalQuery struct {
	Approval struct {
		TokenId        string `json:"token_id"`
		Spender        string `json:"spender"`
		IncludeExpired bool   `json:"include_expired"`
	} `json:"approval"`
}

// expiration mirrors the ledger's wire shape. Exactly one field is set;
// at_time carries nanoseconds since epoch as a decimal string.
type expiration struct {
	Never    *struct{} `json:"never,omitempty"`
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
}

type approvalResp struct {
	Approval struct {
		Spender domain.Address `json:"spender"`
		Expires expiration     `json:"expires"`
	} `json:"approval"`
}

type minterQuery struct {
	Minter struct{} `json:"minter"`
}

type minterResp struct {
	Minter domain.Address `json:"minter"`
}

type latestBlockResp struct {
	Block struct {
		Header struct {
			Height string    `json:"height"`
			Time   time.Time `json:"time"`
		} `json:"header"`
	} `json:"block"`
}

func encodeQuery(q interface{}) (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
