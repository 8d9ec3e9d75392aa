package database

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init("database-test", false, false, ioutil.Discard)
	os.Exit(m.Run())
}

func TestInitFromScratch(t *testing.T) {
	db := &Database{FileName: filepath.Join(t.TempDir(), "faucet.json")}

	require.NoError(t, db.Init())
	assert.Empty(t, db.CurrenciesSent("0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1"))

	content, err := ioutil.ReadFile(db.FileName)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
}

func TestInitCorruptFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "faucet.json")
	require.NoError(t, ioutil.WriteFile(fileName, []byte("not json"), 0644))

	db := &Database{FileName: fileName}

	require.NoError(t, db.Init())
	assert.Empty(t, db.CurrenciesSent("0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1"))
}

func TestInitNullFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "faucet.json")
	require.NoError(t, ioutil.WriteFile(fileName, []byte("null"), 0644))

	db := &Database{FileName: fileName}

	// "null" is valid JSON; the database still has to start from scratch
	require.NoError(t, db.Init())

	address := "0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1"

	require.NoError(t, db.AddCurrencySent(address, "ETH"))
	assert.Equal(t, []string{"ETH"}, db.CurrenciesSent(address))
}

func TestAddCurrencySent(t *testing.T) {
	db := &Database{FileName: filepath.Join(t.TempDir(), "faucet.json")}
	require.NoError(t, db.Init())

	address := "0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1"

	require.NoError(t, db.AddCurrencySent(address, "ETH"))
	require.NoError(t, db.AddCurrencySent(address, "USDT"))

	assert.Equal(t, []string{"ETH", "USDT"}, db.CurrenciesSent(address))

	// Addresses are matched case insensitively
	assert.Equal(t, []string{"ETH", "USDT"}, db.CurrenciesSent(strings.ToUpper(address)))
	assert.Empty(t, db.CurrenciesSent("0x9FBDa871d559710256a2502A2517b794B482Db40"))
}

func TestReopen(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "faucet.json")
	address := "0x785c0Ee1ae1AA2FB35cd6b1d258500b19C02f5D1"

	db := &Database{FileName: fileName}
	require.NoError(t, db.Init())
	require.NoError(t, db.AddCurrencySent(address, "ETH"))

	reopened := &Database{FileName: fileName}
	require.NoError(t, reopened.Init())

	assert.Equal(t, []string{"ETH"}, reopened.CurrenciesSent(address))
}
