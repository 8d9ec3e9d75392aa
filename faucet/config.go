package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BoltzExchange/regtest-tools/database"
	"github.com/BoltzExchange/regtest-tools/discordclient"
	"github.com/BoltzExchange/regtest-tools/ethclient"
	"github.com/BoltzExchange/regtest-tools/slackclient"
	"github.com/BoltzExchange/regtest-tools/tokens"
	"github.com/BurntSushi/toml"
	"github.com/google/logger"
	"github.com/jessevdk/go-flags"
)

type config struct {
	Config  string `short:"c" long:"config" description:"Path to the TOML config file"`
	LogFile string `short:"l" long:"logfile" description:"Path to the log file"`

	Faucet   *Faucet                `group:"Faucet"`
	Ethereum *ethclient.Ethereum    `group:"Ethereum"`
	Database *database.Database     `group:"Database"`
	Discord  *discordclient.Discord `group:"Discord"`
	Slack    *slackclient.Slack     `group:"Slack"`

	// Tokens the faucet should send; can only be set in the config file
	Tokens []*tokens.Token
}

var cfg = config{}

func loadConfig() *config {
	// Ignore unknown flags when parsing the command line the first time
	// so that the "unknown flag" error doesn't show up twice
	parser := flags.NewParser(&cfg, flags.IgnoreUnknown)
	_, _ = parser.Parse()

	if cfg.Config != "" {
		if _, err := toml.DecodeFile(cfg.Config, &cfg); err != nil {
			fmt.Println("Could not read config file: " + err.Error())
		}
	}

	// Parse the flags again so that they override the values from the config file
	if _, err := flags.Parse(&cfg); err != nil {
		os.Exit(1)
	}

	applyDefaults(&cfg)

	return &cfg
}

func applyDefaults(cfg *config) {
	if cfg.Faucet.Port == 0 {
		cfg.Faucet.Port = 8080
	}

	if cfg.Database.FileName == "" {
		cfg.Database.FileName = "faucet.json"
	}
}

func logConfig(cfg *config) {
	logger.Info("Loaded config: " + stringify(cfg))
}

func stringify(value interface{}) string {
	jsonValue, _ := json.MarshalIndent(value, "", "  ")

	return string(jsonValue)
}
