package main

import (
	"github.com/BoltzExchange/regtest-tools/tokens"
	"github.com/google/logger"
)

const applicationName = "faucet"

func main() {
	cfg := loadConfig()
	initLogger(cfg.LogFile)
	logConfig(cfg)

	if len(cfg.Tokens) == 0 {
		logger.Fatal("No tokens were configured")
	}

	if err := tokens.ValidateAll(cfg.Tokens); err != nil {
		logger.Fatal("Invalid token configuration: " + err.Error())
	}

	checkError("database", cfg.Database.Init())
	checkError("Ethereum", cfg.Ethereum.Init())

	notifiers := initNotifiers(cfg)

	for _, notifier := range notifiers {
		if err := notifier.SendMessage("Started faucet with address: `" + cfg.Ethereum.Address().Hex() + "`"); err != nil {
			logger.Warning("Could not send notification: " + err.Error())
		}
	}

	cfg.Faucet.Start(cfg.Tokens, cfg.Ethereum, cfg.Database, notifiers)
}

func initNotifiers(cfg *config) []Notifier {
	var notifiers []Notifier

	if cfg.Discord.Token != "" {
		logger.Info("Initializing Discord client")
		checkError("Discord", cfg.Discord.Init())

		notifiers = append(notifiers, cfg.Discord)
	}

	if cfg.Slack.Token != "" {
		logger.Info("Initializing Slack client")
		cfg.Slack.Init()

		notifiers = append(notifiers, cfg.Slack)
	}

	return notifiers
}

func checkError(service string, err error) {
	if err != nil {
		logger.Fatal("Could not initialize " + service + ": " + err.Error())
	}
}
