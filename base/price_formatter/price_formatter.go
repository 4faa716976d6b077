package priceformatter

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain/commerce"
)

// LamportsDecimals is the number of decimals of SOL
const LamportsDecimals = 9

type PriceFormatter interface {
	// UsdPerSol returns the current SOL price in usd
	UsdPerSol(ctx bCtx.Ctx) (decimal.Decimal, error)
	// Format converts lamports for display. A zero usdPerSol leaves Usd at 0.
	Format(lamports int64, usdPerSol decimal.Decimal) commerce.Price
}
