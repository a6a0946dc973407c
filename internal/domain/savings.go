package domain

import "github.com/shopspring/decimal"

// LargeWithdrawalThreshold 儲蓄帳戶單筆提款超過此金額時發出提醒
const LargeWithdrawalThreshold = 100000

var largeWithdrawal = decimal.NewFromInt(LargeWithdrawalThreshold)

// SavingsAccount 儲蓄帳戶，以一般帳戶為基礎加上利率
type SavingsAccount struct {
	*Account
	rate decimal.Decimal
}

// NewSavingsAccount 建立儲蓄帳戶
// 利率為負時改為 0 並發出 NoticeRateClamped
//
// 參數:
//
//	number: 帳號
//	owner: 戶名
//	initial: 初始餘額
//	rate: 年利率百分比 (5.5 代表 5.5%)
//	opts: 可選配置
func NewSavingsAccount(number, owner string, initial, rate decimal.Decimal, opts ...Option) *SavingsAccount {
	s := &SavingsAccount{Account: NewAccount(number, owner, initial, opts...)}
	if rate.IsNegative() {
		s.notify(Notice{Kind: NoticeRateClamped, Rate: rate})
		rate = decimal.Zero
	}
	s.rate = rate
	return s
}

// Rate 年利率百分比
func (s *SavingsAccount) Rate() decimal.Decimal { return s.rate }

// ProjectedInterest 以目前餘額計算的年利息，不入帳
func (s *SavingsAccount) ProjectedInterest() decimal.Decimal {
	// balance * rate / 100
	return s.balance.Mul(s.rate).Shift(-2)
}

// AddInterest 依目前餘額與利率計算利息並入帳
//
// 回傳:
//
//	decimal.Decimal: 本次入帳的利息
func (s *SavingsAccount) AddInterest() decimal.Decimal {
	interest := s.ProjectedInterest()
	s.balance = s.balance.Add(interest)
	s.notify(Notice{Kind: NoticeInterestAdded, Amount: interest, Rate: s.rate})
	return interest
}

// Withdraw 大額提款先提醒，之後一律照一般帳戶規則處理
func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(largeWithdrawal) {
		s.notify(Notice{Kind: NoticeLargeWithdrawal, Amount: amount})
	}
	return s.Account.Withdraw(amount)
}

// Statement 一般帳戶資訊再加上利率與預估年收益
func (s *SavingsAccount) Statement() Statement {
	st := s.Account.Statement()
	st.Savings = &SavingsTerms{
		Rate:            s.rate,
		ProjectedIncome: s.ProjectedInterest(),
	}
	return st
}
