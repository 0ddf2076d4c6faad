package cwplus

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GasPrice is the price of one unit of gas in a single denom, e.g.
// "0.025ucosm".
type GasPrice struct {
	Denom string
	Price decimal.Decimal
}

// ParseGasPrice parses a gas price string of the form "<decimal><denom>",
// such as "0.025ucosm". The denom starts at the first non-numeric
// character.
func ParseGasPrice(s string) (GasPrice, error) {
	split := len(s)
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			split = i
			break
		}
	}

	num, denom := s[:split], s[split:]
	if num == "" || denom == "" {
		return GasPrice{}, ErrInvalidGasPrice
	}

	price, err := decimal.NewFromString(num)
	if err != nil || price.IsNegative() {
		return GasPrice{}, ErrInvalidGasPrice
	}

	return GasPrice{Denom: strings.TrimSpace(denom), Price: price}, nil
}

// GasLimits holds the gas reserved for each contract operation class.
type GasLimits struct {
	Upload uint64
	Init   uint64
	Exec   uint64
	Send   uint64
}

// DefaultGasLimits returns the gas limits used when none are configured.
func DefaultGasLimits() GasLimits {
	return GasLimits{
		Upload: 1_500_000,
		Init:   500_000,
		Exec:   200_000,
		Send:   80_000,
	}
}

// Fee is a fully computed fee: the coins to pay and the gas to reserve.
type Fee struct {
	Amount []Coin
	Gas    uint64
}

// FeeTable is the static fee schedule for contract operations, computed
// once from a gas price and per-operation gas limits.
type FeeTable struct {
	Upload Fee
	Init   Fee
	Exec   Fee
	Send   Fee
}

// BuildFeeTable computes the fee schedule for the given price and limits.
func BuildFeeTable(price GasPrice, limits GasLimits) FeeTable {
	return FeeTable{
		Upload: calculateFee(price, limits.Upload),
		Init:   calculateFee(price, limits.Init),
		Exec:   calculateFee(price, limits.Exec),
		Send:   calculateFee(price, limits.Send),
	}
}

// calculateFee rounds price*gas up to the next whole unit of the fee
// denom.
func calculateFee(price GasPrice, gas uint64) Fee {
	amount := price.Price.Mul(decimal.NewFromUint64(gas)).Ceil()

	return Fee{
		Amount: []Coin{{Denom: price.Denom, Amount: amount.String()}},
		Gas:    gas,
	}
}
