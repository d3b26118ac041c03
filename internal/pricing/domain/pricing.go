package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OptionContract 期权合约
// 定义期权的基本属性
type OptionContract struct {
	Symbol      string          `json:"symbol"`
	Type        OptionType      `json:"type"`
	StrikePrice decimal.Decimal `json:"strike_price"`
	ExpiryDate  int64           `json:"expiry_date"`
}

// TimeToExpiry 合约剩余到期时间（年），已到期返回 0
func (c *OptionContract) TimeToExpiry(now time.Time) float64 {
	t := float64(c.ExpiryDate-now.UnixMilli()) / 1000 / 24 / 3600 / 365
	if t < 0 {
		return 0
	}
	return t
}

// PricingResult 定价结果实体
type PricingResult struct {
	Symbol          string          `json:"symbol"`
	OptionPrice     decimal.Decimal `json:"option_price"`
	UnderlyingPrice decimal.Decimal `json:"underlying_price"`
	Delta           decimal.Decimal `json:"delta"`
	Gamma           decimal.Decimal `json:"gamma"`
	Theta           decimal.Decimal `json:"theta"`
	Vega            decimal.Decimal `json:"vega"`
	Rho             decimal.Decimal `json:"rho"`
	CalculatedAt    int64           `json:"calculated_at"`
	PricingModel    string          `json:"pricing_model"`
}
