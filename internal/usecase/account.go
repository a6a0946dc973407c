package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-savings-account/internal/domain"
)

// Account 是帳戶的共同介面，一般帳戶與儲蓄帳戶都透過它操作
type Account interface {
	Number() string
	Owner() string
	// Balance 取得帳戶餘額
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	// Withdraw 提款規則由實際帳戶類型決定
	Withdraw(amount decimal.Decimal) error
	// Statement 帳戶資訊，儲蓄帳戶會多帶利率資訊
	Statement() domain.Statement
	Close()
}

// InterestBearer 可以計息的帳戶
type InterestBearer interface {
	AddInterest() decimal.Decimal
}

// AsInterestBearer 判斷帳戶是否為可計息的儲蓄帳戶
func AsInterestBearer(a Account) (InterestBearer, bool) {
	ib, ok := a.(InterestBearer)
	return ib, ok
}

var (
	_ Account        = (*domain.Account)(nil)
	_ Account        = (*domain.SavingsAccount)(nil)
	_ InterestBearer = (*domain.SavingsAccount)(nil)
)
