package govkit

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	account := common.HexToAddress("0x1")

	tests := []struct {
		err      error
		expected string
	}{
		{NewAlreadyDeployerError(account), "account 0x0000000000000000000000000000000000000001 is already a deployer"},
		{NewNotDeployerError(account), "account 0x0000000000000000000000000000000000000001 is not a deployer"},
		{NewAlreadyValidatorError(account), "account 0x0000000000000000000000000000000000000001 is already a validator"},
		{NewNotValidatorError(account), "account 0x0000000000000000000000000000000000000001 is not a validator"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}
