package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	minAddressLen = 3
	maxAddressLen = 90
)

// IsValidAddress checks the shape of a bech32-style account address: all
// lowercase, within the bech32 length bound and limited to characters bech32
// can produce. The chain remains the authority on whether the address exists.
func IsValidAddress(address string) bool {
	if len(address) < minAddressLen || len(address) > maxAddressLen {
		return false
	}
	for _, r := range address {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
