package listing

import (
	"time"

	"github.com/hoanm/simple-marketplace/domain"
)

// Expiration is a point on the chain timeline, either a block height or a
// wall-clock time. The zero value never expires; that is the only expiry the
// authorization checker accepts for marketplace approvals.
type Expiration struct {
	AtHeight *uint64    `json:"atHeight,omitempty" bson:"atHeight,omitempty"`
	AtTime   *time.Time `json:"atTime,omitempty" bson:"atTime,omitempty"`
}

// Never is the never-expiring expiration.
func Never() Expiration {
	return Expiration{}
}

func AtHeight(height uint64) Expiration {
	return Expiration{AtHeight: &height}
}

func AtTime(t time.Time) Expiration {
	return Expiration{AtTime: &t}
}

func (e Expiration) IsNever() bool {
	return e.AtHeight == nil && e.AtTime == nil
}

// IsExpired reports whether the expiration has passed at the given block.
// A point expires the moment the block reaches it, so a listing with
// end_time == block.Time is already ended.
func (e Expiration) IsExpired(block domain.BlockInfo) bool {
	if e.AtHeight != nil {
		return block.Height >= *e.AtHeight
	}
	if e.AtTime != nil {
		return !block.Time.Before(*e.AtTime)
	}
	return false
}

// Before reports whether e expires strictly before other. Never-expiring
// values order after everything else.
func (e Expiration) Before(other Expiration) bool {
	if e.IsNever() {
		return false
	}
	if other.IsNever() {
		return true
	}
	if e.AtHeight != nil && other.AtHeight != nil {
		return *e.AtHeight < *other.AtHeight
	}
	if e.AtTime != nil && other.AtTime != nil {
		return e.AtTime.Before(*other.AtTime)
	}
	// mixed height/time bounds are not comparable; treat as not-before so the
	// config validator rejects the window
	return false
}
