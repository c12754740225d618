package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hoanm/simple-marketplace/base/ctx"
	"github.com/hoanm/simple-marketplace/base/log"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/domain/marketplace"
	"github.com/hoanm/simple-marketplace/service/query"
)

// one document per allowed token, keyed by contract address, so membership
// checks stay a single indexed lookup regardless of list size
type allowedTokenRepoImpl struct {
	q query.Mongo
}

func NewAllowedTokenRepo(q query.Mongo) marketplace.AllowedTokenRepo {
	return &allowedTokenRepoImpl{q}
}

func (im *allowedTokenRepoImpl) Add(ctx ctx.Ctx, contract domain.Address) error {
	selector := bson.M{"contractAddress": contract}
	err := im.q.Upsert(ctx, domain.TableAllowedTokens, selector, &marketplace.AllowedToken{ContractAddress: contract})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *allowedTokenRepoImpl) Contains(ctx ctx.Ctx, contract domain.Address) (bool, error) {
	cnt, err := im.q.Count(ctx, domain.TableAllowedTokens, bson.M{"contractAddress": contract})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
		}).Error("failed to q.Count")
		return false, err
	}
	return cnt > 0, nil
}
