// Package effect describes the state-changing actions a settlement call asks
// the host to execute. The core never performs a transfer itself; it returns
// an ordered batch of effects which the host commits atomically together with
// the call's state mutations.
package effect

import (
	"github.com/hoanm/simple-marketplace/domain"
)

type Type string

const (
	TypeTransferNft           Type = "transfer_nft"
	TypeBankSend              Type = "bank_send"
	TypeTokenTransferFrom     Type = "token_transfer_from"
	TypeInstantiateCollection Type = "instantiate_collection"
	TypeMintNft               Type = "mint_nft"
)

type TransferNftPayload struct {
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	Recipient       domain.Address `json:"recipient"`
}

type BankSendPayload struct {
	Recipient domain.Address `json:"recipient"`
	Denom     string         `json:"denom"`
	Amount    string         `json:"amount"`
}

type TokenTransferFromPayload struct {
	ContractAddress domain.Address `json:"contractAddress"`
	Owner           domain.Address `json:"owner"`
	Recipient       domain.Address `json:"recipient"`
	Amount          string         `json:"amount"`
}

type InstantiateCollectionPayload struct {
	RequestId uint64         `json:"requestId"`
	CodeId    uint64         `json:"codeId"`
	Name      string         `json:"name"`
	Symbol    string         `json:"symbol"`
	Admin     domain.Address `json:"admin"`
	Minter    domain.Address `json:"minter"`
}

type MintNftPayload struct {
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	Owner           domain.Address `json:"owner"`
	TokenUri        string         `json:"tokenUri"`
}

// Effect is a single effect descriptor. Exactly one payload field matching
// Type is set.
type Effect struct {
	Type                  Type                          `json:"type"`
	TransferNft           *TransferNftPayload           `json:"transferNft,omitempty"`
	BankSend              *BankSendPayload              `json:"bankSend,omitempty"`
	TokenTransferFrom     *TokenTransferFromPayload     `json:"tokenTransferFrom,omitempty"`
	InstantiateCollection *InstantiateCollectionPayload `json:"instantiateCollection,omitempty"`
	MintNft               *MintNftPayload               `json:"mintNft,omitempty"`
}

// Batch preserves emission order; the host executes it front to back.
type Batch []Effect

func TransferNft(contractAddress domain.Address, tokenId domain.TokenId, recipient domain.Address) Effect {
	return Effect{
		Type: TypeTransferNft,
		TransferNft: &TransferNftPayload{
			ContractAddress: contractAddress,
			TokenId:         tokenId,
			Recipient:       recipient,
		},
	}
}

func BankSend(recipient domain.Address, denom, amount string) Effect {
	return Effect{
		Type: TypeBankSend,
		BankSend: &BankSendPayload{
			Recipient: recipient,
			Denom:     denom,
			Amount:    amount,
		},
	}
}

func TokenTransferFrom(contractAddress, owner, recipient domain.Address, amount string) Effect {
	return Effect{
		Type: TypeTokenTransferFrom,
		TokenTransferFrom: &TokenTransferFromPayload{
			ContractAddress: contractAddress,
			Owner:           owner,
			Recipient:       recipient,
			Amount:          amount,
		},
	}
}

func InstantiateCollection(requestId, codeId uint64, name, symbol string, admin, minter domain.Address) Effect {
	return Effect{
		Type: TypeInstantiateCollection,
		InstantiateCollection: &InstantiateCollectionPayload{
			RequestId: requestId,
			CodeId:    codeId,
			Name:      name,
			Symbol:    symbol,
			Admin:     admin,
			Minter:    minter,
		},
	}
}

func MintNft(contractAddress domain.Address, tokenId domain.TokenId, owner domain.Address, tokenUri string) Effect {
	return Effect{
		Type: TypeMintNft,
		MintNft: &MintNftPayload{
			ContractAddress: contractAddress,
			TokenId:         tokenId,
			Owner:           owner,
			TokenUri:        tokenUri,
		},
	}
}

// Attribute is a key/value emitted alongside effects for host-side event logs.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Result is what a settlement entry point hands back to the host: the ordered
// effect batch plus event attributes. A nil Result always comes with an error.
type Result struct {
	Effects    Batch       `json:"effects"`
	Attributes []Attribute `json:"attributes"`
}

func NewResult() *Result {
	return &Result{Effects: Batch{}}
}

func (r *Result) AddEffect(e Effect) *Result {
	r.Effects = append(r.Effects, e)
	return r
}

func (r *Result) AddEffects(es Batch) *Result {
	r.Effects = append(r.Effects, es...)
	return r
}

func (r *Result) AddAttribute(key, value string) *Result {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}
