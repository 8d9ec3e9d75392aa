package main

import (
	"fmt"
	"io/ioutil"
	"math/big"
	"os"

	"github.com/BoltzExchange/regtest-tools/ethclient"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/logger"
)

const applicationName = "send"

// coinSender is the part of the Ethereum client the send tool uses
type coinSender interface {
	SendEther(address string, amount *big.Int) (*types.Transaction, error)
	SendToken(token string, address string, amount *big.Int) (*types.Transaction, error)
}

func main() {
	if err := initConfig(); err != nil {
		os.Exit(1)
	}

	// Only the confirmation line should be printed; logs of the libraries are discarded
	logger.Init(applicationName, false, false, ioutil.Discard)

	wei, err := checkArgs(cfg.Args.Amount, cfg.Args.Destination, cfg.Args.Contract)

	if err != nil {
		fail(err)
	}

	if err := cfg.Ethereum.Init(); err != nil {
		fail(err)
	}

	message, err := sendCoins(cfg.Ethereum, cfg.Args.Amount, wei, cfg.Args.Destination, cfg.Args.Contract)

	if err != nil {
		fail(err)
	}

	fmt.Println(message)
}

// checkArgs parses the amount and validates the addresses before any connection to the node is made
func checkArgs(amount string, destination string, contract string) (*big.Int, error) {
	wei, err := ethclient.ParseEther(amount)

	if err != nil {
		return nil, err
	}

	if err := ethclient.CheckAddress(destination); err != nil {
		return nil, err
	}

	if contract != "" {
		if err := ethclient.CheckAddress(contract); err != nil {
			return nil, err
		}
	}

	return wei, nil
}

// sendCoins sends Ether or, if a contract address is set, an ERC20 token
func sendCoins(eth coinSender, amount string, wei *big.Int, destination string, contract string) (string, error) {
	if contract == "" {
		transaction, err := eth.SendEther(destination, wei)

		if err != nil {
			return "", err
		}

		return "Sent " + amount + " Ether: " + transaction.Hash().Hex(), nil
	}

	transaction, err := eth.SendToken(contract, destination, wei)

	if err != nil {
		return "", err
	}

	return "Sent " + amount + " ERC20: " + transaction.Hash().Hex(), nil
}

func fail(err error) {
	fmt.Println("Could not send coins: " + err.Error())
	os.Exit(1)
}
