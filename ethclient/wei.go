package ethclient

import (
	"math"
	"math/big"
	"regexp"

	"github.com/pkg/errors"
)

// Ether amounts are denominated in Wei which has 18 decimal places
var etherDecimals = big.NewFloat(math.Pow(10, 18))

// Amounts have to be plain decimal numbers; big.Float alone would also accept
// hex and binary prefixes and underscore separators
var amountFormat = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// ParseEther converts a decimal string denominated in Ether to Wei, truncating towards zero
func ParseEther(amount string) (*big.Int, error) {
	if !amountFormat.MatchString(amount) {
		return nil, errors.New("could not parse amount: " + amount)
	}

	ether, ok := new(big.Float).SetPrec(128).SetString(amount)

	if !ok || ether.IsInf() {
		return nil, errors.New("could not parse amount: " + amount)
	}

	wei, _ := new(big.Float).SetPrec(128).Mul(ether, etherDecimals).Int(nil)

	return wei, nil
}

// EtherToWei converts an amount denominated in Ether to Wei
func EtherToWei(amount float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(amount), etherDecimals).Int(nil)

	return wei
}
