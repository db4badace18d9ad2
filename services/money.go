package services

import "github.com/shopspring/decimal"

// maxAmount is the largest value a DECIMAL(12,2) money column can hold.
var maxAmount = decimal.New(999999999999, -2)

// validAmount reports whether d is stored without rounding or overflow.
func validAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(2)) && d.Abs().LessThanOrEqual(maxAmount)
}
