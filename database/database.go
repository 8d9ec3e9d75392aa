package database

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/google/logger"
	"github.com/pkg/errors"
)

// The file is written as a whole on every update so access has to be serialized
var databaseLock = &sync.Mutex{}

// Database is a JSON file that keeps track of the currencies the faucet sent to an address
type Database struct {
	FileName string `long:"database.file" description:"File in which the sent currencies are stored"`

	// Map between addresses and the currencies that were sent to them
	currenciesSent map[string][]string

	file *os.File
}

// Init opens the database file or starts from scratch if it cannot be read
func (database *Database) Init() error {
	logger.Info("Opening database file: " + database.FileName)

	file, _ := os.OpenFile(database.FileName, os.O_RDWR, 0644)
	database.file = file

	err := json.NewDecoder(database.file).Decode(&database.currenciesSent)

	// A file that contains "null" decodes without an error but leaves the map nil
	if err != nil || database.currenciesSent == nil {
		logger.Info("Could not open database file. Starting from scratch")
		database.currenciesSent = map[string][]string{}

		createdFile, err := os.Create(database.FileName)

		if err != nil {
			return errors.Wrap(err, "could not create database file")
		}

		database.file = createdFile

		return database.write()
	}

	return nil
}

// CurrenciesSent returns the currencies that were sent to an address already
func (database *Database) CurrenciesSent(address string) []string {
	databaseLock.Lock()
	defer databaseLock.Unlock()

	return database.currenciesSent[strings.ToLower(address)]
}

// AddCurrencySent records that a currency was sent to an address
func (database *Database) AddCurrencySent(address string, currency string) error {
	databaseLock.Lock()
	defer databaseLock.Unlock()

	address = strings.ToLower(address)
	database.currenciesSent[address] = append(database.currenciesSent[address], currency)

	return database.write()
}

func (database *Database) write() error {
	jsonMap, _ := json.MarshalIndent(database.currenciesSent, "", "  ")
	_, err := database.file.WriteAt(jsonMap, 0)

	return err
}
