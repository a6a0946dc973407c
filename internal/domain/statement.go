package domain

import "github.com/shopspring/decimal"

// Statement 帳戶資訊摘要，文字格式交給輸出端決定
type Statement struct {
	Number  string
	Owner   string
	Balance decimal.Decimal
	// Savings 只有儲蓄帳戶才有值
	Savings *SavingsTerms
}

// SavingsTerms 儲蓄帳戶額外顯示的利率與預估年收益
type SavingsTerms struct {
	Rate            decimal.Decimal
	ProjectedIncome decimal.Decimal
}
