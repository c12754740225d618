package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoanm/simple-marketplace/domain"
)

func TestPaymentAssetValidate(t *testing.T) {
	cases := []struct {
		name    string
		payment PaymentAsset
		want    error
	}{
		{
			name:    "native with positive amount",
			payment: PaymentAsset{Kind: PaymentKindNative, Denom: "uatom", Amount: "100"},
			want:    nil,
		},
		{
			name:    "token with positive amount",
			payment: PaymentAsset{Kind: PaymentKindToken, ContractAddress: "addr_cw20", Amount: "100"},
			want:    nil,
		},
		{
			name:    "native without denom",
			payment: PaymentAsset{Kind: PaymentKindNative, Amount: "100"},
			want:    domain.ErrInvalidListingConfig,
		},
		{
			name:    "token without contract",
			payment: PaymentAsset{Kind: PaymentKindToken, Amount: "100"},
			want:    domain.ErrInvalidListingConfig,
		},
		{
			name:    "zero amount",
			payment: PaymentAsset{Kind: PaymentKindNative, Denom: "uatom", Amount: "0"},
			want:    domain.ErrInvalidListingConfig,
		},
		{
			name:    "negative amount",
			payment: PaymentAsset{Kind: PaymentKindNative, Denom: "uatom", Amount: "-1"},
			want:    domain.ErrInvalidListingConfig,
		},
		{
			name:    "non numeric amount",
			payment: PaymentAsset{Kind: PaymentKindNative, Denom: "uatom", Amount: "lots"},
			want:    domain.ErrInvalidNumberFormat,
		},
		{
			name:    "unknown kind",
			payment: PaymentAsset{Kind: "nft", Amount: "100"},
			want:    domain.ErrInvalidListingConfig,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.payment.Validate())
		})
	}
}

func TestAmountEquals(t *testing.T) {
	assert.True(t, AmountEquals("100", "100"))
	assert.True(t, AmountEquals("0100", "100"))
	assert.False(t, AmountEquals("100", "101"))
	assert.False(t, AmountEquals("100", "not-a-number"))
}

func TestPaymentAssetRoundTrip(t *testing.T) {
	native := PaymentAsset{Kind: PaymentKindNative, Denom: "uatom", Amount: "100"}
	got, err := ToPaymentAsset(native.ToAsset())
	assert.NoError(t, err)
	assert.Equal(t, native, got)

	token := PaymentAsset{Kind: PaymentKindToken, ContractAddress: "addr_cw20", Amount: "100"}
	got, err = ToPaymentAsset(token.ToAsset())
	assert.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestToPaymentAssetRejectsNft(t *testing.T) {
	nft := FromNft(NftAsset{ContractAddress: "addr_nft", TokenId: "1"})
	_, err := ToPaymentAsset(nft)
	assert.Equal(t, domain.ErrBadParamInput, err)
}
