package slackclient

import (
	"github.com/nlopes/slack"
)

// Slack represents a Slack client
type Slack struct {
	Token   string `long:"slack.token" json:"-" description:"Slack OAuth token"`
	Channel string `long:"slack.channel" description:"Slack channel to which messages should be sent"`
	Prefix  string `long:"slack.prefix" description:"Prefix for every message"`

	api *slack.Client
}

// Init initializes a new Slack client
func (slackClient *Slack) Init() {
	slackClient.api = slack.New(slackClient.Token)
}

// SendMessage sends a message to the Slack channel
func (slackClient *Slack) SendMessage(message string) error {
	if slackClient.Prefix != "" {
		message = slackClient.Prefix + ": " + message
	}

	_, _, _, err := slackClient.api.SendMessage(slackClient.Channel, slack.MsgOptionText(message, false))

	return err
}
