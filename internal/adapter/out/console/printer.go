package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/JoeShih716/go-savings-account/internal/domain"
	"github.com/JoeShih716/go-savings-account/internal/usecase"
)

// Printer 將示範流程輸出成文字
// 金額一律顯示到小數點後 2 位，利率顯示到 1 位
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Banner(title string) {
	p.printf("\n=== %s ===\n", title)
}

func (p *Printer) Section(title string) {
	p.printf("\n\n********** %s **********\n", title)
}

func (p *Printer) Step(title string) {
	p.printf("\n--- %s ---\n", title)
}

// Statement 顯示帳戶資訊，儲蓄帳戶多兩行
func (p *Printer) Statement(st domain.Statement) {
	p.printf("\n=== Account information ===\n")
	p.printf("Account number: %s\n", st.Number)
	p.printf("Owner: %s\n", st.Owner)
	p.printf("Balance: %s\n", st.Balance.StringFixed(2))
	if st.Savings != nil {
		p.printf("Interest rate: %s%%\n", st.Savings.Rate.StringFixed(1))
		p.printf("Projected annual income: %s\n", st.Savings.ProjectedIncome.StringFixed(2))
	}
}

// Notify 依 Notice 類型輸出對應訊息
func (p *Printer) Notify(n domain.Notice) {
	switch n.Kind {
	case domain.NoticeBalanceClamped:
		p.printf("Error: initial balance cannot be negative (%s). Set to 0.\n", n.Amount.StringFixed(2))
	case domain.NoticeRateClamped:
		p.printf("Error: interest rate cannot be negative (%s%%). Set to 0%%.\n", n.Rate.StringFixed(1))
	case domain.NoticeDeposited:
		p.printf("Deposited: %s\n", n.Amount.StringFixed(2))
	case domain.NoticeWithdrawn:
		p.printf("Withdrawn: %s\n", n.Amount.StringFixed(2))
	case domain.NoticeRejected:
		p.rejected(n)
	case domain.NoticeLargeWithdrawal:
		p.printf("Warning: withdrawal of %s exceeds the savings account limit!\n", n.Amount.StringFixed(2))
		p.printf("A regular account is recommended for large transactions.\n")
	case domain.NoticeInterestAdded:
		p.printf("Interest added at %s%%: %s\n", n.Rate.StringFixed(1), n.Amount.StringFixed(2))
	case domain.NoticeClosed:
		p.printf("Account %s closed.\n", n.Account)
	}
}

func (p *Printer) rejected(n domain.Notice) {
	var insufficient *domain.InsufficientFundsError
	switch {
	case errors.As(n.Err, &insufficient):
		p.printf("Error: insufficient funds!\n")
		p.printf("Requested: %s, available: %s\n",
			insufficient.Requested.StringFixed(2), insufficient.Available.StringFixed(2))
	case errors.Is(n.Err, domain.ErrNonPositiveAmount):
		p.printf("Error: amount must be positive!\n")
	default:
		p.printf("Error: %v\n", n.Err)
	}
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

var _ usecase.Narrator = (*Printer)(nil)
