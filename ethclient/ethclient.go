package ethclient

import (
	"context"
	"crypto/ecdsa"
	"io/ioutil"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	geth "github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/logger"
	"github.com/pkg/errors"
)

// Sends have to be serialized so that concurrent calls cannot use the same nonce
var sendLock = &sync.Mutex{}

var etherTransferGasLimit = uint64(21000)
var tokenTransferGasLimit = uint64(50000)

// Ethereum represents a client for the JSON-RPC interface of an Ethereum node
type Ethereum struct {
	RPC          string `long:"eth.rpc" env:"ETH_RPC" description:"URI of the RPC interface of the Ethereum node"`
	KeystorePath string `long:"eth.keystore" env:"ETH_KEYSTORE" description:"Path to the keystore of the Ethereum address"`
	Password     string `long:"eth.password" env:"ETH_PASSWORD" json:"-" description:"Password of the keystore"`
	PrivateKey   string `long:"eth.privatekey" env:"ETH_PRIVATE_KEY" json:"-" description:"Hex encoded private key of the Ethereum address; can be used instead of a keystore"`

	client  *geth.Client
	chainID *big.Int

	ctx context.Context

	key     *ecdsa.PrivateKey
	address common.Address
}

// Init connects to the Ethereum node and loads the key with which transactions will be signed
func (eth *Ethereum) Init() error {
	if eth.RPC == "" {
		eth.RPC = "http://127.0.0.1:8545"
	}

	var err error
	eth.client, err = geth.Dial(eth.RPC)

	if err != nil {
		return errors.Wrap(err, "could not connect to Ethereum node")
	}

	if eth.ctx == nil {
		eth.ctx = context.Background()
	}

	eth.chainID, err = eth.client.ChainID(eth.ctx)

	if err != nil {
		return errors.Wrap(err, "could not query chain ID")
	}

	if err := eth.initKey(); err != nil {
		return err
	}

	logger.Info("Initialized Ethereum client with address: " + eth.address.Hex())

	return nil
}

// Address returns the address of the account transactions are sent from
func (eth *Ethereum) Address() common.Address {
	return eth.address
}

// SendEther sends a specific amount of Ether to a given address
func (eth *Ethereum) SendEther(address string, amount *big.Int) (*types.Transaction, error) {
	recipient, err := parseAddress(address)

	if err != nil {
		return nil, err
	}

	sendLock.Lock()
	defer sendLock.Unlock()

	nonce, err := eth.client.PendingNonceAt(eth.ctx, eth.address)

	if err != nil {
		return nil, err
	}

	gasPrice, err := eth.client.SuggestGasPrice(eth.ctx)

	if err != nil {
		return nil, err
	}

	transaction := types.NewTransaction(nonce, recipient, amount, etherTransferGasLimit, gasPrice, nil)
	transaction, err = eth.signTx(transaction)

	if err != nil {
		return nil, err
	}

	if err := eth.client.SendTransaction(eth.ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// SendToken sends a specific amount of an ERC20 token to a given address
func (eth *Ethereum) SendToken(token string, address string, amount *big.Int) (*types.Transaction, error) {
	contract, err := parseAddress(token)

	if err != nil {
		return nil, err
	}

	recipient, err := parseAddress(address)

	if err != nil {
		return nil, err
	}

	data, err := TransferData(recipient, amount)

	if err != nil {
		return nil, err
	}

	sendLock.Lock()
	defer sendLock.Unlock()

	nonce, err := eth.client.PendingNonceAt(eth.ctx, eth.address)

	if err != nil {
		return nil, err
	}

	gasPrice, err := eth.client.SuggestGasPrice(eth.ctx)

	if err != nil {
		return nil, err
	}

	transaction := types.NewTransaction(nonce, contract, big.NewInt(0), tokenTransferGasLimit, gasPrice, data)
	transaction, err = eth.signTx(transaction)

	if err != nil {
		return nil, err
	}

	if err := eth.client.SendTransaction(eth.ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// EthBalance queries the Ether balance of a given address
func (eth *Ethereum) EthBalance(address string) (*big.Int, error) {
	account, err := parseAddress(address)

	if err != nil {
		return nil, err
	}

	return eth.client.BalanceAt(eth.ctx, account, nil)
}

func (eth *Ethereum) initKey() error {
	if eth.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(eth.PrivateKey, "0x"))

		if err != nil {
			return errors.Wrap(err, "could not parse private key")
		}

		eth.key = key
		eth.address = crypto.PubkeyToAddress(key.PublicKey)

		return nil
	}

	rawKeystore, err := ioutil.ReadFile(eth.KeystorePath)

	if err != nil {
		return errors.Wrap(err, "could not read keystore")
	}

	key, err := keystore.DecryptKey(rawKeystore, eth.Password)

	if err != nil {
		return errors.Wrap(err, "could not decrypt keystore")
	}

	eth.key = key.PrivateKey
	eth.address = crypto.PubkeyToAddress(key.PrivateKey.PublicKey)

	return nil
}

func (eth *Ethereum) signTx(transaction *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(transaction, types.NewEIP155Signer(eth.chainID), eth.key)
}

// CheckAddress returns an error if the given address is not valid hex
func CheckAddress(address string) error {
	_, err := parseAddress(address)
	return err
}

// parseAddress rejects malformed addresses before any call is made to the node
func parseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, errors.New("invalid address: " + address)
	}

	return common.HexToAddress(address), nil
}
