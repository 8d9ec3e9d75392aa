package main

import (
	"math/big"
	"regexp"
	"strings"
	"testing"

	"github.com/BoltzExchange/regtest-tools/ethclient"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	destination = "0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1"
	contract    = "0x9FBDa871d559710256a2502A2517b794B482Db40"
)

var confirmationLine = regexp.MustCompile(`^Sent \S+ (Ether|ERC20): 0x[0-9a-f]{64}$`)

type sendCall struct {
	token       string
	destination string
	amount      string
}

type fakeSender struct {
	err   error
	calls []sendCall
}

func (fake *fakeSender) SendEther(address string, amount *big.Int) (*types.Transaction, error) {
	if fake.err != nil {
		return nil, fake.err
	}

	fake.calls = append(fake.calls, sendCall{destination: address, amount: amount.String()})

	return dummyTransaction(), nil
}

func (fake *fakeSender) SendToken(token string, address string, amount *big.Int) (*types.Transaction, error) {
	if fake.err != nil {
		return nil, fake.err
	}

	fake.calls = append(fake.calls, sendCall{token: token, destination: address, amount: amount.String()})

	return dummyTransaction(), nil
}

func dummyTransaction() *types.Transaction {
	return types.NewTransaction(21, common.HexToAddress(destination), big.NewInt(1), 21000, big.NewInt(1), nil)
}

func TestSendCoinsEther(t *testing.T) {
	fake := &fakeSender{}

	wei, err := ethclient.ParseEther("1.5")
	require.NoError(t, err)

	message, err := sendCoins(fake, "1.5", wei, destination, "")
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, sendCall{destination: destination, amount: "1500000000000000000"}, fake.calls[0])

	assert.True(t, strings.HasPrefix(message, "Sent 1.5 Ether: "))
	assert.Regexp(t, confirmationLine, message)
}

func TestSendCoinsToken(t *testing.T) {
	fake := &fakeSender{}

	wei, err := ethclient.ParseEther("2")
	require.NoError(t, err)

	message, err := sendCoins(fake, "2", wei, destination, contract)
	require.NoError(t, err)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, sendCall{token: contract, destination: destination, amount: "2000000000000000000"}, fake.calls[0])

	assert.True(t, strings.HasPrefix(message, "Sent 2 ERC20: "))
	assert.Regexp(t, confirmationLine, message)
}

func TestSendCoinsEchoesAmount(t *testing.T) {
	fake := &fakeSender{}

	wei, err := ethclient.ParseEther("1.50")
	require.NoError(t, err)

	message, err := sendCoins(fake, "1.50", wei, destination, "")
	require.NoError(t, err)

	// The amount is echoed exactly the way it was typed
	assert.True(t, strings.HasPrefix(message, "Sent 1.50 Ether: "))
}

func TestSendCoinsError(t *testing.T) {
	fake := &fakeSender{err: errors.New("nonce too low")}

	_, err := sendCoins(fake, "1", big.NewInt(1), destination, "")

	require.Error(t, err)
	assert.Equal(t, "nonce too low", err.Error())
}

func TestCheckArgs(t *testing.T) {
	wei, err := checkArgs("1.5", destination, "")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", wei.String())

	wei, err = checkArgs("2", destination, contract)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", wei.String())
}

func TestCheckArgsInvalid(t *testing.T) {
	tests := []struct {
		amount      string
		destination string
		contract    string
		err         string
	}{
		{"abc", destination, "", "could not parse amount: abc"},
		{"1", "invalid", "", "invalid address: invalid"},
		{"1", destination, "invalid", "invalid address: invalid"},
		{"1", "", "", "invalid address: "},
	}

	for _, tt := range tests {
		_, err := checkArgs(tt.amount, tt.destination, tt.contract)

		require.Error(t, err)
		assert.Equal(t, tt.err, err.Error())
	}
}
