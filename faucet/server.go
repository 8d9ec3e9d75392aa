package main

import (
	"encoding/json"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/BoltzExchange/regtest-tools/database"
	"github.com/BoltzExchange/regtest-tools/ethclient"
	"github.com/BoltzExchange/regtest-tools/tokens"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/logger"
)

// Requests have to be serialized so that concurrent requests for the same
// address cannot pay out twice
var faucetLock = &sync.Mutex{}

// Notifier announces faucet payouts to a chat service
type Notifier interface {
	SendMessage(message string) error
}

// coinSender is the part of the Ethereum client the faucet uses
type coinSender interface {
	SendEther(address string, amount *big.Int) (*types.Transaction, error)
	SendToken(token string, address string, amount *big.Int) (*types.Transaction, error)
	EthBalance(address string) (*big.Int, error)
}

// Faucet is an HTTP server that sends Ether and tokens on request
type Faucet struct {
	Port int `long:"faucet.port" description:"Port to which the HTTP server of the faucet will listen"`

	tokens []*tokens.Token

	eth       coinSender
	database  *database.Database
	notifiers []Notifier
}

type faucetRequest struct {
	Address string `json:"address"`
}

type faucetResponse struct {
	TokensSent map[string]string `json:"tokensSent"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Start runs the HTTP server of the faucet
func (faucet *Faucet) Start(tokenList []*tokens.Token, eth coinSender, db *database.Database, notifiers []Notifier) {
	logger.Info("Starting faucet on port: " + strconv.Itoa(faucet.Port))

	var symbols []string

	for _, token := range tokenList {
		symbols = append(symbols, token.Symbol)
	}

	logger.Info("Faucet currencies: " + strings.Join(symbols, ", "))

	faucet.tokens = tokenList

	faucet.eth = eth
	faucet.database = db
	faucet.notifiers = notifiers

	mux := http.NewServeMux()
	mux.HandleFunc("/faucet", faucet.handleRequest)

	err := http.ListenAndServe("0.0.0.0:"+strconv.Itoa(faucet.Port), mux)

	if err != nil {
		logger.Fatal("Could not start faucet: " + err.Error())
	}
}

func (faucet *Faucet) handleRequest(writer http.ResponseWriter, request *http.Request) {
	var body faucetRequest

	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeResponse(writer, 400, errorResponse{
			Error: "could not parse request: " + err.Error(),
		})
		return
	}

	if body.Address == "" {
		writeResponse(writer, 400, errorResponse{
			Error: "no address was provided",
		})
		return
	}

	response, err := faucet.sendTokens(body.Address)

	if err != nil {
		writeResponse(writer, 400, errorResponse{
			Error: "could not send tokens: " + err.Error(),
		})
		faucet.notify("Could not send tokens: " + err.Error())

		return
	}

	writeResponse(writer, 200, response)

	faucet.notify("Sent tokens to `" + body.Address + "`")
}

func (faucet *Faucet) sendTokens(address string) (faucetResponse, error) {
	faucetLock.Lock()
	defer faucetLock.Unlock()

	response := faucetResponse{
		TokensSent: map[string]string{},
	}

	sentAlready := faucet.database.CurrenciesSent(address)

	for _, token := range faucet.tokens {
		wasSent := false

		for _, sent := range sentAlready {
			if sent == token.Symbol {
				wasSent = true
				break
			}
		}

		if wasSent {
			logger.Info("Not sending " + token.Symbol + " to " + address + " again")
			continue
		}

		amount := ethclient.EtherToWei(token.Amount)

		if token.Address == "" {
			balance, err := faucet.eth.EthBalance(address)

			if err != nil {
				return response, err
			}

			// Ether is only sent to addresses that cannot pay for gas yet
			if balance.Cmp(big.NewInt(0)) != 0 {
				etherBalance := new(big.Float).Quo(new(big.Float).SetInt(balance), big.NewFloat(1000000000000000000))
				logger.Info("Not sending Ether to " + address + " because it has a balance of: " + etherBalance.String())
				continue
			}

			if _, err := faucet.eth.SendEther(address, amount); err != nil {
				return response, err
			}
		} else {
			if _, err := faucet.eth.SendToken(token.Address, address, amount); err != nil {
				return response, err
			}
		}

		if err := faucet.database.AddCurrencySent(address, token.Symbol); err != nil {
			logger.Error("Could not write database file: " + err.Error())
		}

		response.TokensSent[token.Symbol] = amount.String()
	}

	return response, nil
}

func (faucet *Faucet) notify(message string) {
	for _, notifier := range faucet.notifiers {
		if err := notifier.SendMessage(message); err != nil {
			logger.Warning("Could not send notification: " + err.Error())
		}
	}
}

func writeResponse(writer http.ResponseWriter, status int, data interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_ = json.NewEncoder(writer).Encode(data)
}
