package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rpgo/overpayment-simulator/internal/calculation"
	moneyutil "github.com/rpgo/overpayment-simulator/pkg/decimal"
)

// Environment variables read by LoadDefaults.
const (
	EnvCurrency   = "OVERPAY_CURRENCY"
	EnvPaymentDay = "OVERPAY_PAYMENT_DAY"
	EnvMaxMonths  = "OVERPAY_MAX_MONTHS"
)

// Defaults holds values for optional inputs.
type Defaults struct {
	Currency   string
	PaymentDay int
	MaxMonths  int
}

// BuiltinDefaults returns the defaults used when no environment is set.
func BuiltinDefaults() Defaults {
	return Defaults{
		Currency:   moneyutil.DefaultCurrency,
		PaymentDay: 1,
		MaxMonths:  calculation.DefaultMaxMonths,
	}
}

// LoadDefaults reads defaults from the environment, loading the given .env
// files first. A missing file is ignored; a file that cannot be parsed is an
// error. Malformed values fall back to the built-in defaults.
func LoadDefaults(envFiles ...string) (Defaults, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return BuiltinDefaults(), fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	d := BuiltinDefaults()
	if v := strings.TrimSpace(os.Getenv(EnvCurrency)); v != "" {
		d.Currency = strings.ToUpper(v)
	}
	if v := getEnvInt(EnvPaymentDay, d.PaymentDay); v >= calculation.MinPaymentDay && v <= calculation.MaxPaymentDay {
		d.PaymentDay = v
	}
	if v := getEnvInt(EnvMaxMonths, d.MaxMonths); v > 0 {
		d.MaxMonths = v
	}
	return d, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
