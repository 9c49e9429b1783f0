// Package models содержит структуры агрегированных отчётов.
package models

// BrandValue стоимость активного инвентаря по одному бренду.
type BrandValue struct {
	Brand string  `json:"brand"`
	Value float64 `json:"value"`
}

// InventoryValueReport отчёт о стоимости текущего инвентаря.
type InventoryValueReport struct {
	TotalValue  float64      `json:"total_value"`
	BrandValues []BrandValue `json:"brand_values"`
}

// ReasonAmount сумма выбытий по одной причине.
type ReasonAmount struct {
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
}

// DisposalProfitReport отчёт о суммах выбытия по причинам за период.
type DisposalProfitReport struct {
	DisposalAmounts []ReasonAmount `json:"disposal_amounts"`
}

// TrendsReport отчёт о движении средств за период.
type TrendsReport struct {
	InboundAmount  float64 `json:"inbound_amount"`
	OutboundAmount float64 `json:"outbound_amount"`
	NetAmount      float64 `json:"net_amount"`
}

// AccountBalance сальдо счёта за период.
type AccountBalance struct {
	DebitTotal  float64 `json:"debit_total"`
	CreditTotal float64 `json:"credit_total"`
	Balance     float64 `json:"balance"`
}
