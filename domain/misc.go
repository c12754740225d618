package domain

import (
	"strings"
	"time"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

const EmptyAddress = Address("")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// Coin is an amount of a native denom. Amount is a base-10 integer string
// since chain amounts exceed what int64 can carry.
type Coin struct {
	Denom  string `json:"denom" bson:"denom"`
	Amount string `json:"amount" bson:"amount"`
}

// BlockInfo is the host-supplied block context a call is evaluated against.
type BlockInfo struct {
	Height uint64    `json:"height"`
	Time   time.Time `json:"time"`
}

// CallInfo identifies the caller of an entry point together with the funds
// attached to the call. The host authenticates the caller; this core only
// consumes the identity.
type CallInfo struct {
	Caller Address `json:"caller"`
	Funds  []Coin  `json:"funds"`
}
