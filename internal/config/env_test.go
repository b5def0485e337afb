package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults_Builtin(t *testing.T) {
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvPaymentDay, "")
	t.Setenv(EnvMaxMonths, "")

	d, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, BuiltinDefaults(), d)
}

func TestLoadDefaults_FromEnvironment(t *testing.T) {
	t.Setenv(EnvCurrency, "eur")
	t.Setenv(EnvPaymentDay, "10")
	t.Setenv(EnvMaxMonths, "600")

	d, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "EUR", d.Currency)
	assert.Equal(t, 10, d.PaymentDay)
	assert.Equal(t, 600, d.MaxMonths)
}

func TestLoadDefaults_InvalidValuesFallBack(t *testing.T) {
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvPaymentDay, "31")
	t.Setenv(EnvMaxMonths, "lots")

	d, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 1, d.PaymentDay)
	assert.Equal(t, BuiltinDefaults().MaxMonths, d.MaxMonths)
}

func TestLoadDefaults_DotEnvFile(t *testing.T) {
	// godotenv does not override variables that are already set
	t.Setenv(EnvCurrency, "")
	os.Unsetenv(EnvCurrency)
	t.Setenv(EnvPaymentDay, "")
	os.Unsetenv(EnvPaymentDay)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OVERPAY_CURRENCY=USD\nOVERPAY_PAYMENT_DAY=5\n"), 0644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", d.Currency)
	assert.Equal(t, 5, d.PaymentDay)
}

func TestLoadDefaults_MalformedDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OVERPAY_CURRENCY=\"USD\n"), 0644))

	d, err := LoadDefaults(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load env file "+path)
	assert.Equal(t, BuiltinDefaults(), d)
}
