package main

import (
	"github.com/BoltzExchange/regtest-tools/ethclient"
	"github.com/jessevdk/go-flags"
)

type config struct {
	Args struct {
		Amount      string `positional-arg-name:"amount" description:"Amount of coins to send denominated in Ether" required:"yes"`
		Destination string `positional-arg-name:"destination" description:"Address to which the coins should be sent" required:"yes"`
		Contract    string `positional-arg-name:"contract" description:"Address of the ERC20 token to send; Ether is sent when omitted"`
	} `positional-args:"yes"`

	Ethereum *ethclient.Ethereum `group:"Ethereum"`
}

var cfg = config{}

func initConfig() error {
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "<amount> <destination> [contract]"

	_, err := parser.Parse()

	return err
}
