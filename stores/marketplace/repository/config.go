package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/marketplace"
	"github.com/hoanm/simple-marketplace/service/query"
)

// the config collection holds exactly one document
const configDocId = "config"

type configRepoImpl struct {
	q query.Mongo
}

func NewConfigRepo(q query.Mongo) marketplace.ConfigRepo {
	return &configRepoImpl{q}
}

func (im *configRepoImpl) Get(ctx ctx.Ctx) (*marketplace.Config, error) {
	res := marketplace.Config{}
	err := im.q.FindOne(ctx, domain.TableMarketplaceConfigs, bson.M{"_id": configDocId}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *configRepoImpl) Set(ctx ctx.Ctx, cfg *marketplace.Config) error {
	err := im.q.Upsert(ctx, domain.TableMarketplaceConfigs, bson.M{"_id": configDocId}, cfg)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"cfg": *cfg,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
