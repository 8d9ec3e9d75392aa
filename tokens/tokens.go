package tokens

import (
	"github.com/BoltzExchange/regtest-tools/ethclient"
	"github.com/pkg/errors"
)

// Token is one entry of the faucet configuration
//
// If the "Address" is empty the entry stands for Ether itself;
// in that case the "Symbol" has to be "ETH"
type Token struct {
	// Symbol of the currency
	Symbol string
	// Address of the ERC20 token contract
	Address string
	// Amount that should be sent per request
	Amount float64
}

// ValidateAll makes sure every token entry is usable and no symbol is configured twice
func ValidateAll(tokenList []*Token) error {
	symbols := map[string]bool{}

	for _, token := range tokenList {
		if err := token.Validate(); err != nil {
			return err
		}

		if symbols[token.Symbol] {
			return errors.New("token " + token.Symbol + " is configured twice")
		}

		symbols[token.Symbol] = true
	}

	return nil
}

// Validate makes sure a token entry can be used by the faucet
func (token *Token) Validate() error {
	if token.Symbol == "" {
		return errors.New("token has no symbol")
	}

	if token.Address == "" {
		if token.Symbol != "ETH" {
			return errors.New("token " + token.Symbol + " has no address")
		}
	} else if err := ethclient.CheckAddress(token.Address); err != nil {
		return errors.Wrap(err, "token "+token.Symbol)
	}

	if token.Amount <= 0 {
		return errors.New("token " + token.Symbol + " has no amount to send")
	}

	return nil
}
