package services

import "github.com/shopspring/decimal"

// Tax and shipping are fixed at zero for now, a placeholder until real
// pricing rules land.
var (
	taxRate      = decimal.Zero
	flatShipping = decimal.Zero
)
