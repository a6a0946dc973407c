package domain

import (
	"github.com/quintans/faults"
	"github.com/shopspring/decimal"
)

// Account 一般帳戶
//
// 結構:
//
//	number: 帳號 (不解析內容)
//	owner: 戶名
//	balance: 餘額，任何時候都不小於 0
//	notifier: 操作結果回報對象
type Account struct {
	number   string
	owner    string
	balance  decimal.Decimal
	notifier Notifier
	closed   bool
}

// Option 定義了帳戶的配置選項函數
type Option func(*Account)

// WithNotifier 設定接收操作結果的 Notifier
func WithNotifier(n Notifier) Option {
	return func(a *Account) {
		if n != nil {
			a.notifier = n
		}
	}
}

// NewAccount 建立一般帳戶
// 初始餘額為負時不回傳錯誤，改為 0 並發出 NoticeBalanceClamped
//
// 參數:
//
//	number: 帳號
//	owner: 戶名
//	initial: 初始餘額
//	opts: 可選配置
func NewAccount(number, owner string, initial decimal.Decimal, opts ...Option) *Account {
	a := &Account{
		number:   number,
		owner:    owner,
		notifier: discardNotifier{},
	}
	for _, opt := range opts {
		opt(a)
	}

	if initial.IsNegative() {
		a.notify(Notice{Kind: NoticeBalanceClamped, Amount: initial})
		initial = decimal.Zero
	}
	a.balance = initial
	return a
}

// Number 帳號
func (a *Account) Number() string { return a.number }

// Owner 戶名
func (a *Account) Owner() string { return a.owner }

// Balance 目前餘額
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return a.reject(amount, ErrNonPositiveAmount)
	}

	a.balance = a.balance.Add(amount)
	a.notify(Notice{Kind: NoticeDeposited, Amount: amount})
	return nil
}

// Withdraw 提款
//
// 回傳:
//
//	error: ErrNonPositiveAmount 或 *InsufficientFundsError，失敗時餘額不變
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return a.reject(amount, ErrNonPositiveAmount)
	}

	if amount.GreaterThan(a.balance) {
		return a.reject(amount, &InsufficientFundsError{
			Requested: amount,
			Available: a.balance,
		})
	}

	a.balance = a.balance.Sub(amount)
	a.notify(Notice{Kind: NoticeWithdrawn, Amount: amount})
	return nil
}

// Statement 帳戶資訊摘要
func (a *Account) Statement() Statement {
	return Statement{
		Number:  a.number,
		Owner:   a.owner,
		Balance: a.balance,
	}
}

// Close 發出關閉通知，重複呼叫不會再通知
func (a *Account) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.notify(Notice{Kind: NoticeClosed})
}

func (a *Account) reject(amount decimal.Decimal, err error) error {
	a.notify(Notice{Kind: NoticeRejected, Amount: amount, Err: err})
	return faults.Wrap(err)
}

// notify 補上帳號與當下餘額後送出
func (a *Account) notify(n Notice) {
	n.Account = a.number
	n.Balance = a.balance
	a.notifier.Notify(n)
}
