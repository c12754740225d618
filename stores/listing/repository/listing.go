package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/database/mongoclient"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/listing"
	"github.com/hoanm/simple-marketplace/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Order, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := listing.Order{}
	err = im.q.FindOne(ctx, domain.TableListings, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *listingRepoImpl) Upsert(ctx ctx.Ctx, order *listing.Order) error {
	id := order.ToId()
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Upsert(ctx, domain.TableListings, selector, order)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"order":    *order,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

// Remove is idempotent. Removing an id that is already gone is not an error.
func (im *listingRepoImpl) Remove(ctx ctx.Ctx, id listing.Id) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Remove(ctx, domain.TableListings, selector)
	if err == query.ErrNotFound {
		return nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Order, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}

	if options.ContractAddress != nil {
		qry["contractAddress"] = *options.ContractAddress
	}

	if options.StartAfter != nil {
		qry["tokenId"] = bson.M{"$gt": *options.StartAfter}
	}

	limit := listing.DefaultLimit
	if options.Limit != nil && *options.Limit > 0 && *options.Limit < limit {
		limit = *options.Limit
	}

	res := []*listing.Order{}
	err = im.q.Search(ctx, domain.TableListings, 0, int(limit), "tokenId", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
