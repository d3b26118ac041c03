package application

// PriceOptionCommand 单合约定价命令
// 到期时间可以用 TimeToExpiry（年）或 ExpiryDate（毫秒时间戳）给出，
// 两者同时存在时以 ExpiryDate 为准
type PriceOptionCommand struct {
	Symbol          string  `json:"symbol"`
	OptionType      string  `json:"option_type"`
	ExpiryDate      int64   `json:"expiry_date"`
	StrikePrice     float64 `json:"strike_price"`
	UnderlyingPrice float64 `json:"underlying_price"`
	TimeToExpiry    float64 `json:"time_to_expiry"`
	Volatility      float64 `json:"volatility"`
	RiskFreeRate    float64 `json:"risk_free_rate"`
	DividendYield   float64 `json:"dividend_yield"`
}

// PriceBatchCommand 批量定价命令，字段按广播语义对齐
type PriceBatchCommand struct {
	OptionType    string    `json:"option_type"`
	Spot          []float64 `json:"spot"`
	Strike        []float64 `json:"strike"`
	TimeToExpiry  []float64 `json:"time_to_expiry"`
	Volatility    []float64 `json:"volatility"`
	RiskFreeRate  float64   `json:"risk_free_rate"`
	DividendYield float64   `json:"dividend_yield"`
}

// BatchPricingDTO 批量定价结果，六个字段共享广播形状
type BatchPricingDTO struct {
	Price []float64 `json:"price"`
	Delta []float64 `json:"delta"`
	Gamma []float64 `json:"gamma"`
	Vega  []float64 `json:"vega"`
	Theta []float64 `json:"theta"`
	Rho   []float64 `json:"rho"`
}
