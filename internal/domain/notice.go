package domain

import "github.com/shopspring/decimal"

// NoticeKind 帳戶回報的事件類型
type NoticeKind uint8

const (
	// 初始餘額為負，已調整為 0
	NoticeBalanceClamped NoticeKind = iota + 1
	// 利率為負，已調整為 0
	NoticeRateClamped
	// 存款成功
	NoticeDeposited
	// 提款成功
	NoticeWithdrawn
	// 操作被拒絕，Err 說明原因
	NoticeRejected
	// 大額提款提醒 (不阻擋)
	NoticeLargeWithdrawal
	// 利息入帳
	NoticeInterestAdded
	// 帳戶關閉
	NoticeClosed
)

var noticeKindNames = map[NoticeKind]string{
	NoticeBalanceClamped:  "balance_clamped",
	NoticeRateClamped:     "rate_clamped",
	NoticeDeposited:       "deposited",
	NoticeWithdrawn:       "withdrawn",
	NoticeRejected:        "rejected",
	NoticeLargeWithdrawal: "large_withdrawal",
	NoticeInterestAdded:   "interest_added",
	NoticeClosed:          "closed",
}

func (k NoticeKind) String() string {
	if name, ok := noticeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Notice 單一操作結果的回報
//
// 欄位依 Kind 使用:
//
//	Amount: 存提款金額、利息金額、大額提款金額
//	Balance: 操作後餘額
//	Rate: 利率 (僅利息相關)
//	Err: 被拒絕的原因
type Notice struct {
	Kind    NoticeKind
	Account string
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Rate    decimal.Decimal
	Err     error
}

// Notifier 接收帳戶回報的事件
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc 讓一般函式可以當作 Notifier
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
