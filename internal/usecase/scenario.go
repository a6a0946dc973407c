package usecase

import (
	"github.com/quintans/faults"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-savings-account/internal/domain"
)

// AccountKind 帳戶類型
type AccountKind string

const (
	KindStandard AccountKind = "standard"
	KindSavings  AccountKind = "savings"
)

// AccountSpec 開戶參數，Rate 只有儲蓄帳戶使用
type AccountSpec struct {
	Kind    AccountKind     `yaml:"kind"`
	Number  string          `yaml:"number"`
	Owner   string          `yaml:"owner"`
	Balance decimal.Decimal `yaml:"balance"`
	Rate    decimal.Decimal `yaml:"rate"`
}

// StandardScenario 一般帳戶示範的參數
type StandardScenario struct {
	AccountSpec `yaml:",inline"`

	Deposit  decimal.Decimal `yaml:"deposit"`
	Withdraw decimal.Decimal `yaml:"withdraw"`
	// Overdraw 超過餘額的提款金額，預期失敗
	Overdraw decimal.Decimal `yaml:"overdraw"`
}

// SavingsScenario 儲蓄帳戶示範的參數
type SavingsScenario struct {
	AccountSpec `yaml:",inline"`

	Deposit  decimal.Decimal `yaml:"deposit"`
	Withdraw decimal.Decimal `yaml:"withdraw"`
	// LargeWithdraw 超過大額門檻的提款金額
	LargeWithdraw decimal.Decimal `yaml:"large_withdraw"`
}

// PortfolioScenario 混合帳戶示範，每個帳戶都做同樣的存提款
type PortfolioScenario struct {
	Accounts []AccountSpec   `yaml:"accounts"`
	Deposit  decimal.Decimal `yaml:"deposit"`
	Withdraw decimal.Decimal `yaml:"withdraw"`
}

// Scenario 完整的示範腳本
type Scenario struct {
	Standard  StandardScenario  `yaml:"standard"`
	Savings   SavingsScenario   `yaml:"savings"`
	Portfolio PortfolioScenario `yaml:"portfolio"`
}

// Open 依開戶參數的類型開立對應的帳戶
//
// 參數:
//
//	spec: 開戶參數
//	notifier: 帳戶操作結果的接收者
//
// 回傳:
//
//	Account: 一般帳戶或儲蓄帳戶
//	error: 未知的帳戶類型
func Open(spec AccountSpec, notifier domain.Notifier) (Account, error) {
	switch spec.Kind {
	case KindStandard, "":
		return domain.NewAccount(spec.Number, spec.Owner, spec.Balance, domain.WithNotifier(notifier)), nil
	case KindSavings:
		return domain.NewSavingsAccount(spec.Number, spec.Owner, spec.Balance, spec.Rate, domain.WithNotifier(notifier)), nil
	default:
		return nil, faults.Errorf("account %s: unknown kind %q", spec.Number, spec.Kind)
	}
}
