package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/marketplace"
	"github.com/hoanm/simple-marketplace/service/query"
)

const requestIdCounterKey = "collectionRequestId"

type requestIdCounter struct {
	Seq uint64 `bson:"seq"`
}

type collectionRepoImpl struct {
	q query.Mongo
}

func NewCollectionRepo(q query.Mongo) marketplace.CollectionRepo {
	return &collectionRepoImpl{q}
}

func (im *collectionRepoImpl) NextRequestId(ctx ctx.Ctx) (uint64, error) {
	res := requestIdCounter{}
	err := im.q.Increment(ctx, domain.TableCounters, bson.M{"_id": requestIdCounterKey}, &res, "seq", 1)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.Increment")
		return 0, err
	}
	return res.Seq, nil
}

func (im *collectionRepoImpl) SaveRequest(ctx ctx.Ctx, req *marketplace.CollectionRequest) error {
	selector := bson.M{"requestId": req.RequestId}
	err := im.q.Upsert(ctx, domain.TableCollectionRequests, selector, req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"req": *req,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *collectionRepoImpl) GetRequest(ctx ctx.Ctx, requestId uint64) (*marketplace.CollectionRequest, error) {
	res := marketplace.CollectionRequest{}
	err := im.q.FindOne(ctx, domain.TableCollectionRequests, bson.M{"requestId": requestId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"requestId": requestId,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *collectionRepoImpl) RemoveRequest(ctx ctx.Ctx, requestId uint64) error {
	err := im.q.Remove(ctx, domain.TableCollectionRequests, bson.M{"requestId": requestId})
	if err == query.ErrNotFound {
		return nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"requestId": requestId,
		}).Error("failed to q.Remove")
		return err
	}
	return nil
}

func (im *collectionRepoImpl) SaveCollection(ctx ctx.Ctx, collection *marketplace.Collection) error {
	selector := bson.M{"contractAddress": collection.ContractAddress}
	err := im.q.Upsert(ctx, domain.TableCollections, selector, collection)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"collection": *collection,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *collectionRepoImpl) GetCollection(ctx ctx.Ctx, contract domain.Address) (*marketplace.Collection, error) {
	res := marketplace.Collection{}
	err := im.q.FindOne(ctx, domain.TableCollections, bson.M{"contractAddress": contract}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}
