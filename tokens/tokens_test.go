package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []*Token{
		{Symbol: "ETH", Amount: 1},
		{Symbol: "USDT", Address: "0x9FBDa871d559710256a2502A2517b794B482Db40", Amount: 1000},
		{Symbol: "WBTC", Address: "0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1", Amount: 0.5},
	}

	for _, token := range valid {
		assert.NoError(t, token.Validate())
	}
}

func TestValidateAll(t *testing.T) {
	require.NoError(t, ValidateAll([]*Token{
		{Symbol: "ETH", Amount: 1},
		{Symbol: "USDT", Address: "0x9FBDa871d559710256a2502A2517b794B482Db40", Amount: 1000},
	}))

	err := ValidateAll([]*Token{
		{Symbol: "ETH", Amount: 1},
		{Symbol: "USDT", Address: "0x9FBDa871d559710256a2502A2517b794B482Db40", Amount: 1000},
		{Symbol: "ETH", Amount: 2},
	})
	require.Error(t, err)
	assert.Equal(t, "token ETH is configured twice", err.Error())

	// Entries are validated on their own too
	assert.EqualError(t, ValidateAll([]*Token{{Amount: 1}}), "token has no symbol")
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		token *Token
		err   string
	}{
		{&Token{Amount: 1}, "token has no symbol"},
		{&Token{Symbol: "USDT", Amount: 1}, "token USDT has no address"},
		{&Token{Symbol: "USDT", Address: "not an address", Amount: 1}, "token USDT: invalid address: not an address"},
		{&Token{Symbol: "ETH"}, "token ETH has no amount to send"},
		{&Token{Symbol: "ETH", Amount: -1}, "token ETH has no amount to send"},
	}

	for _, tt := range tests {
		err := tt.token.Validate()

		require.Error(t, err)
		assert.Equal(t, tt.err, err.Error())
	}
}
