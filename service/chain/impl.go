package chain

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/listing"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		lcdUrl:  cfg.LcdUrl,
		timeout: cfg.Timeout,
	}
}

type client struct {
	client  http.Client
	lcdUrl  string
	timeout time.Duration
}

func (c *client) OwnerOf(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	q := ownerOfQuery{}
	q.OwnerOf.TokenId = string(tokenId)
	q.OwnerOf.IncludeExpired = false

	resp := ownerOfResp{}
	if err := c.smartQuery(ctx, contract, q, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"contract": contract,
			"tokenId":  tokenId,
			"err":      err,
		}).Error("owner_of query failed")
		return "", err
	}
	return resp.Owner, nil
}

func (c *client) ApprovalOf(ctx bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, spender domain.Address) (listing.Expiration, error) {
	q := approvalQuery{}
	q.Approval.TokenId = string(tokenId)
	q.Approval.Spender = string(spender)
	q.Approval.IncludeExpired = true

	resp := approvalResp{}
	if err := c.smartQuery(ctx, contract, q, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"contract": contract,
			"tokenId":  tokenId,
			"spender":  spender,
			"err":      err,
		}).Error("approval query failed")
		return listing.Expiration{}, err
	}
	return resp.Approval.Expires.toExpiration()
}

func (c *client) Minter(ctx bCtx.Ctx, contract domain.Address) (domain.Address, error) {
	resp := minterResp{}
	if err := c.smartQuery(ctx, contract, minterQuery{}, &resp); err != nil {
		ctx.WithFields(log.Fields{
			"contract": contract,
			"err":      err,
		}).Error("minter query failed")
		return "", err
	}
	return resp.Minter, nil
}

func (c *client) LatestBlock(ctx bCtx.Ctx) (domain.BlockInfo, error) {
	url := fmt.Sprintf("%s/cosmos/base/tendermint/v1beta1/blocks/latest", c.lcdUrl)
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return domain.BlockInfo{}, err
	}

	resp := latestBlockResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return domain.BlockInfo{}, err
	}

	height, err := strconv.ParseUint(resp.Block.Header.Height, 10, 64)
	if err != nil {
		ctx.WithFields(log.Fields{
			"height": resp.Block.Header.Height,
			"err":    err,
		}).Error("parse block height failed")
		return domain.BlockInfo{}, err
	}
	return domain.BlockInfo{Height: height, Time: resp.Block.Header.Time}, nil
}

func (c *client) smartQuery(ctx bCtx.Ctx, contract domain.Address, query interface{}, out interface{}) error {
	encoded, err := encodeQuery(query)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/cosmwasm/wasm/v1/contract/%s/smart/%s", c.lcdUrl, contract, encoded)
	data, err := c.get(ctx, url)
	if err != nil {
		return err
	}

	resp := smartQueryResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	if len(resp.Data) == 0 {
		return ErrEmptyQueryResponse
	}
	return json.Unmarshal(resp.Data, out)
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

func (e expiration) toExpiration() (listing.Expiration, error) {
	switch {
	case e.Never != nil:
		return listing.Never(), nil
	case e.AtHeight != nil:
		return listing.AtHeight(*e.AtHeight), nil
	case e.AtTime != nil:
		nanos, err := strconv.ParseUint(*e.AtTime, 10, 64)
		if err != nil {
			return listing.Expiration{}, xerrors.Errorf("invalid expiry timestamp %s: %w", *e.AtTime, err)
		}
		return listing.AtTime(time.Unix(0, int64(nanos)).UTC()), nil
	default:
		return listing.Expiration{}, ErrUnknownExpiration
	}
}
