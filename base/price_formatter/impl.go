package priceformatter

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/service/coingecko"
)

type PriceFormatterCfg struct {
	CoinGecko coingecko.Client
}

type impl struct {
	coinGecko coingecko.Client
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	return &impl{
		coinGecko: cfg.CoinGecko,
	}
}

func (f *impl) UsdPerSol(ctx bCtx.Ctx) (decimal.Decimal, error) {
	price, err := f.coinGecko.GetPrice(ctx, coingecko.SolanaId)
	if err != nil {
		ctx.WithField("err", err).Error("coinGecko.GetPrice failed")
		return decimal.Zero, err
	}
	return price, nil
}

func (f *impl) Format(lamports int64, usdPerSol decimal.Decimal) commerce.Price {
	return Format(lamports, usdPerSol)
}

// Format converts lamports to a SOL decimal string and a usd float
func Format(lamports int64, usdPerSol decimal.Decimal) commerce.Price {
	sol := ToSol(lamports)
	usd, _ := sol.Mul(usdPerSol).Round(2).Float64()
	return commerce.Price{
		Lamports: lamports,
		Sol:      sol.String(),
		Usd:      usd,
	}
}

func ToSol(lamports int64) decimal.Decimal {
	return decimal.New(lamports, -LamportsDecimals)
}
