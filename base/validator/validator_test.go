package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) SetupTest() {
}

func (s *ValidatorTestSuite) TearDownTest() {
}

func (s *ValidatorTestSuite) SetupSuite() {
}

func (s *ValidatorTestSuite) TearDownSuite() {
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "ab",
			expIsValid: false,
		},
		{
			desc:       "valid address",
			address:    "wasm1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqha5tqz",
			expIsValid: true,
		},
		{
			desc:       "valid address - test alias",
			address:    "addr_seller",
			expIsValid: true,
		},
		{
			desc:       "uppercase rejected",
			address:    "Wasm1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqha5tqz",
			expIsValid: false,
		},
		{
			desc:       "whitespace rejected",
			address:    "wasm1 qqq",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
