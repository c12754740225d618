package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/asset"
	"github.com/hoanm/simple-marketplace/domain/effect"
	"github.com/hoanm/simple-marketplace/domain/listing"
	mListing "github.com/hoanm/simple-marketplace/domain/listing/mocks"
	mLedger "github.com/hoanm/simple-marketplace/domain/nftledger/mocks"
	mPayment "github.com/hoanm/simple-marketplace/domain/payment/mocks"
)

var (
	mockCtx = bCtx.Background()

	marketAddr = domain.Address("addr_market")
	sellerAddr = domain.Address("addr_seller")
	buyerAddr  = domain.Address("addr_buyer")
	nftAddr    = domain.Address("addr_nft")
	tokenAddr  = domain.Address("addr_cw20")
)

type listingSuite struct {
	suite.Suite
	mockRepo   *mListing.Repo
	mockLedger *mLedger.Ledger
	mockRouter *mPayment.Router
	mockTx     *mListing.Transactional
	subject    *impl
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (t *listingSuite) SetupTest() {
	t.mockRepo = &mListing.Repo{}
	t.mockLedger = &mLedger.Ledger{}
	t.mockRouter = &mPayment.Router{}
	t.mockTx = &mListing.Transactional{}
	t.subject = &impl{
		listingRepo:        t.mockRepo,
		nftLedger:          t.mockLedger,
		paymentRouter:      t.mockRouter,
		transactional:      t.mockTx,
		marketplaceAddress: marketAddr,
	}
}

func (t *listingSuite) passThroughTx() {
	t.mockTx.
		On("RunWithTransaction", mockCtx, mock.Anything).
		Return(func(c bCtx.Ctx, fn func(bCtx.Ctx) error) error { return fn(c) })
}

func nativeCfg(amount string) listing.ListingConfig {
	return listing.ListingConfig{
		Price: asset.PaymentAsset{Kind: asset.PaymentKindNative, Denom: "uusd", Amount: amount},
	}
}

func atBlock(height uint64, t time.Time) domain.BlockInfo {
	return domain.BlockInfo{Height: height, Time: t}
}

func (t *listingSuite) TestListHappyPath() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	cfg := nativeCfg("100")

	t.mockLedger.On("OwnerOf", mockCtx, nftAddr, domain.TokenId("1")).Return(sellerAddr, nil)
	t.mockLedger.On("ApprovalOf", mockCtx, nftAddr, domain.TokenId("1"), marketAddr).Return(listing.Never(), nil)
	t.passThroughTx()
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	res, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, cfg)
	t.NoError(err)
	t.Empty(res.Effects)
	t.Equal(effect.Attribute{Key: "method", Value: "list"}, res.Attributes[0])

	stored := t.mockRepo.Calls[0].Arguments.Get(1).(*listing.Order)
	t.Equal(sellerAddr, stored.Owner)
	t.Equal("100", stored.Consideration[0].StartAmount)
	t.Equal(sellerAddr, stored.Consideration[0].Recipient)
}

func (t *listingSuite) TestListRequiresTokenId() {
	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), asset.NftAsset{ContractAddress: nftAddr}, nativeCfg("100"))
	t.ErrorIs(err, domain.ErrTokenIdRequired)
}

func (t *listingSuite) TestListRejectsNonPositivePrice() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, nativeCfg("0"))
	t.ErrorIs(err, domain.ErrInvalidListingConfig)

	_, err = t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, nativeCfg("not-a-number"))
	t.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (t *listingSuite) TestListRejectsInvertedWindow() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	start := listing.AtHeight(200)
	end := listing.AtHeight(100)
	cfg := nativeCfg("100")
	cfg.StartTime = &start
	cfg.EndTime = &end

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, cfg)
	t.ErrorIs(err, domain.ErrInvalidListingConfig)
}

func (t *listingSuite) TestListRejectsNonOwner() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}

	t.mockLedger.On("OwnerOf", mockCtx, nftAddr, domain.TokenId("1")).Return(sellerAddr, nil)

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, time.Now()), nft, nativeCfg("100"))
	t.ErrorIs(err, domain.ErrUnauthorized)
	t.mockRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *listingSuite) TestListRequiresApproval() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}

	t.mockLedger.On("OwnerOf", mockCtx, nftAddr, domain.TokenId("1")).Return(sellerAddr, nil)
	t.mockLedger.On("ApprovalOf", mockCtx, nftAddr, domain.TokenId("1"), marketAddr).Return(listing.Expiration{}, domain.ErrNotFound)

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, nativeCfg("100"))
	t.ErrorIs(err, domain.ErrNeverExpiredApprovalRequired)
}

func (t *listingSuite) TestListRejectsExpiringApproval() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}

	t.mockLedger.On("OwnerOf", mockCtx, nftAddr, domain.TokenId("1")).Return(sellerAddr, nil)
	t.mockLedger.On("ApprovalOf", mockCtx, nftAddr, domain.TokenId("1"), marketAddr).Return(listing.AtHeight(9999999), nil)

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, nativeCfg("100"))
	t.ErrorIs(err, domain.ErrUnauthorized)
}

func (t *listingSuite) TestListChecksTokenAllowList() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	cfg := listing.ListingConfig{
		Price: asset.PaymentAsset{Kind: asset.PaymentKindToken, ContractAddress: tokenAddr, Amount: "100"},
	}

	t.mockLedger.On("OwnerOf", mockCtx, nftAddr, domain.TokenId("1")).Return(sellerAddr, nil)
	t.mockLedger.On("ApprovalOf", mockCtx, nftAddr, domain.TokenId("1"), marketAddr).Return(listing.Never(), nil)
	t.mockRouter.On("IsAllowed", mockCtx, tokenAddr).Return(false, nil)

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, cfg)
	t.ErrorIs(err, domain.ErrPaymentTokenNotAllowed)
	t.mockRepo.AssertNotCalled(t.T(), "Upsert", mock.Anything, mock.Anything)
}

func (t *listingSuite) TestListAllowedTokenPrice() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	cfg := listing.ListingConfig{
		Price: asset.PaymentAsset{Kind: asset.PaymentKindToken, ContractAddress: tokenAddr, Amount: "100"},
	}

	t.mockLedger.On("OwnerOf", mockCtx, nftAddr, domain.TokenId("1")).Return(sellerAddr, nil)
	t.mockLedger.On("ApprovalOf", mockCtx, nftAddr, domain.TokenId("1"), marketAddr).Return(listing.Never(), nil)
	t.mockRouter.On("IsAllowed", mockCtx, tokenAddr).Return(true, nil)
	t.passThroughTx()
	t.mockRepo.On("Upsert", mockCtx, mock.Anything).Return(nil)

	_, err := t.subject.List(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft, cfg)
	t.NoError(err)
}

func (t *listingSuite) TestBuyHappyPath() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	order := listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))
	funds := []domain.Coin{{Denom: "uusd", Amount: "100"}}
	pay := effect.Batch{effect.BankSend(sellerAddr, "uusd", "100")}

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)
	t.mockRouter.
		On("Route", mockCtx, asset.PaymentAsset{Kind: asset.PaymentKindNative, Denom: "uusd", Amount: "100"}, buyerAddr, sellerAddr, funds).
		Return(pay, nil)
	t.passThroughTx()
	t.mockRepo.On("Remove", mockCtx, id).Return(nil)

	res, err := t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr, Funds: funds}, atBlock(1, time.Now()), nft)
	t.NoError(err)
	t.Len(res.Effects, 2)
	t.Equal(effect.TypeTransferNft, res.Effects[0].Type)
	t.Equal(buyerAddr, res.Effects[0].TransferNft.Recipient)
	t.Equal(effect.TypeBankSend, res.Effects[1].Type)
	t.mockRepo.AssertCalled(t.T(), "Remove", mockCtx, id)
}

func (t *listingSuite) TestBuyUnknownListing() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "404"}

	t.mockRepo.On("FindOne", mockCtx, listing.Id{ContractAddress: nftAddr, TokenId: "404"}).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, time.Now()), nft)
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *listingSuite) TestBuyRejectsSeller() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	order := listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)

	_, err := t.subject.Buy(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft)
	t.ErrorIs(err, domain.ErrSelfPurchase)
}

func (t *listingSuite) TestBuyOutsideWindow() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	now := time.Now()

	cfg := nativeCfg("100")
	start := listing.AtTime(now.Add(time.Hour))
	end := listing.AtTime(now.Add(2 * time.Hour))
	cfg.StartTime = &start
	cfg.EndTime = &end
	order := listing.NewFixedPriceListing(id, sellerAddr, cfg)

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)

	_, err := t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, now), nft)
	t.ErrorIs(err, domain.ErrListingNotStarted)

	// the end bound is exclusive of the listing: end == block time is ended
	_, err = t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, now.Add(2*time.Hour)), nft)
	t.ErrorIs(err, domain.ErrListingEnded)

	t.mockRouter.On("Route", mockCtx, mock.Anything, buyerAddr, sellerAddr, mock.Anything).Return(effect.Batch{}, nil)
	t.passThroughTx()
	t.mockRepo.On("Remove", mockCtx, id).Return(nil)

	_, err = t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, now.Add(90*time.Minute)), nft)
	t.NoError(err)
}

func (t *listingSuite) TestBuyKeepsListingWhenPaymentFails() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	order := listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))
	funds := []domain.Coin{{Denom: "uusd", Amount: "99"}}

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)
	t.mockRouter.
		On("Route", mockCtx, mock.Anything, buyerAddr, sellerAddr, funds).
		Return(nil, domain.ErrInsufficientFunds)

	_, err := t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr, Funds: funds}, atBlock(1, time.Now()), nft)
	t.ErrorIs(err, domain.ErrInsufficientFunds)
	t.mockRepo.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything)
}

func (t *listingSuite) TestBuyConsumesListingExactlyOnce() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	order := listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))
	funds := []domain.Coin{{Denom: "uusd", Amount: "100"}}

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil).Once()
	t.mockRepo.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotFound)
	t.mockRouter.On("Route", mockCtx, mock.Anything, buyerAddr, sellerAddr, funds).Return(effect.Batch{}, nil)
	t.passThroughTx()
	t.mockRepo.On("Remove", mockCtx, id).Return(nil)

	_, err := t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr, Funds: funds}, atBlock(1, time.Now()), nft)
	t.NoError(err)

	_, err = t.subject.Buy(mockCtx, domain.CallInfo{Caller: buyerAddr, Funds: funds}, atBlock(1, time.Now()), nft)
	t.ErrorIs(err, domain.ErrNotFound)
	t.mockRepo.AssertNumberOfCalls(t.T(), "Remove", 1)
}

func (t *listingSuite) TestCancelBySeller() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	order := listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)
	t.passThroughTx()
	t.mockRepo.On("Remove", mockCtx, id).Return(nil)

	res, err := t.subject.Cancel(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft)
	t.NoError(err)
	t.Empty(res.Effects)
	t.Equal(effect.Attribute{Key: "method", Value: "cancel"}, res.Attributes[0])
}

func (t *listingSuite) TestCancelLiveListingNeedsSeller() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	order := listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)

	_, err := t.subject.Cancel(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, time.Now()), nft)
	t.ErrorIs(err, domain.ErrUnauthorized)
	t.mockRepo.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything)
}

func (t *listingSuite) TestCancelExpiredListingByAnyone() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "1"}
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	now := time.Now()

	cfg := nativeCfg("100")
	end := listing.AtTime(now.Add(-time.Hour))
	cfg.EndTime = &end
	order := listing.NewFixedPriceListing(id, sellerAddr, cfg)

	t.mockRepo.On("FindOne", mockCtx, id).Return(order, nil)
	t.passThroughTx()
	t.mockRepo.On("Remove", mockCtx, id).Return(nil)

	_, err := t.subject.Cancel(mockCtx, domain.CallInfo{Caller: buyerAddr}, atBlock(1, now), nft)
	t.NoError(err)
}

func (t *listingSuite) TestCancelUnknownListing() {
	nft := asset.NftAsset{ContractAddress: nftAddr, TokenId: "404"}

	t.mockRepo.On("FindOne", mockCtx, listing.Id{ContractAddress: nftAddr, TokenId: "404"}).Return(nil, domain.ErrNotFound)

	_, err := t.subject.Cancel(mockCtx, domain.CallInfo{Caller: sellerAddr}, atBlock(1, time.Now()), nft)
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *listingSuite) TestGetListingsByContractAddress() {
	id := listing.Id{ContractAddress: nftAddr, TokenId: "1"}
	orders := []*listing.Order{listing.NewFixedPriceListing(id, sellerAddr, nativeCfg("100"))}

	t.mockRepo.On("FindAll", mockCtx, mock.Anything, mock.Anything).Return(orders, nil)

	res, err := t.subject.GetListingsByContractAddress(mockCtx, nftAddr, listing.WithLimit(10))
	t.NoError(err)
	t.Equal(orders, res)
}
