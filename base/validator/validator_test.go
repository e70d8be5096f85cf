package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAuctionId() {
	tests := []struct {
		desc       string
		id         string
		expIsValid bool
	}{
		{
			desc:       "invalid id",
			id:         "not-a-uuid",
			expIsValid: false,
		},
		{
			desc:       "empty id",
			id:         "",
			expIsValid: false,
		},
		{
			desc:       "valid id",
			id:         "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			expIsValid: true,
		},
		{
			desc:       "valid id - upper case",
			id:         "6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAuctionId(t.id), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
