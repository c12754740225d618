package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/hoanm/simple-marketplace/domain"
	"github.com/hoanm/simple-marketplace/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrBadParamInput),
			errors.Is(err, domain.ErrInvalidListingConfig),
			errors.Is(err, domain.ErrInvalidNumberFormat),
			errors.Is(err, domain.ErrTokenIdRequired),
			errors.Is(err, domain.ErrInsufficientFunds),
			errors.Is(err, domain.ErrPaymentTokenNotAllowed),
			errors.Is(err, domain.ErrListingNotStarted),
			errors.Is(err, domain.ErrListingEnded),
			errors.Is(err, domain.ErrSelfPurchase),
			errors.Is(err, domain.ErrNeverExpiredApprovalRequired):
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
