package usecase

import (
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/JoeShih716/go-savings-account/internal/domain"
)

// Demo 依固定順序示範一般帳戶、儲蓄帳戶與混合帳戶的操作
type Demo struct {
	narrator Narrator
	logger   logrus.FieldLogger
}

func NewDemo(narrator Narrator, logger logrus.FieldLogger) *Demo {
	return &Demo{
		narrator: narrator,
		logger:   logger,
	}
}

// Run 執行完整示範
// 前兩段開立的帳戶在整個示範結束後才關閉，關閉順序與開立順序相反
//
// 回傳:
//
//	error: 混合帳戶中有無法開立的帳戶類型
func (d *Demo) Run(sc Scenario) error {
	d.logger.WithField("portfolio", len(sc.Portfolio.Accounts)).Info("demo started")
	d.narrator.Banner("Bank account simulation")

	standard := d.RunStandard(sc.Standard)
	defer standard.Close()

	savings := d.RunSavings(sc.Savings)
	defer savings.Close()

	if err := d.RunPortfolio(sc.Portfolio); err != nil {
		return err
	}

	d.narrator.Banner("Simulation finished")
	d.logger.Info("demo finished")
	return nil
}

// RunStandard 一般帳戶: 存款、提款、超額提款
func (d *Demo) RunStandard(sc StandardScenario) *domain.Account {
	d.narrator.Section("Standard account")

	acc := domain.NewAccount(sc.Number, sc.Owner, sc.Balance, domain.WithNotifier(d.narrator))
	d.narrator.Statement(acc.Statement())

	d.narrator.Step("Deposit")
	d.check("deposit", acc, acc.Deposit(sc.Deposit))

	d.narrator.Step("Withdrawal")
	d.check("withdraw", acc, acc.Withdraw(sc.Withdraw))

	d.narrator.Step("Withdrawal exceeding balance")
	d.check("withdraw", acc, acc.Withdraw(sc.Overdraw))

	d.narrator.Statement(acc.Statement())
	return acc
}

// RunSavings 儲蓄帳戶: 計息、存款、一般提款、大額提款、再次計息
func (d *Demo) RunSavings(sc SavingsScenario) *domain.SavingsAccount {
	d.narrator.Section("Savings account")

	acc := domain.NewSavingsAccount(sc.Number, sc.Owner, sc.Balance, sc.Rate, domain.WithNotifier(d.narrator))
	d.narrator.Statement(acc.Statement())

	d.narrator.Step("Interest accrual")
	acc.AddInterest()

	d.narrator.Step("Deposit")
	d.check("deposit", acc, acc.Deposit(sc.Deposit))

	d.narrator.Step("Withdrawal")
	d.check("withdraw", acc, acc.Withdraw(sc.Withdraw))

	d.narrator.Step("Large withdrawal")
	d.check("withdraw", acc, acc.Withdraw(sc.LargeWithdraw))

	d.narrator.Step("Interest accrual")
	acc.AddInterest()

	d.narrator.Statement(acc.Statement())
	return acc
}

// RunPortfolio 透過共同介面操作不同類型的帳戶
// 只有儲蓄帳戶會計息；提款與帳戶資訊依實際類型處理
func (d *Demo) RunPortfolio(sc PortfolioScenario) error {
	d.narrator.Section("Mixed accounts")

	accounts := make([]Account, 0, len(sc.Accounts))
	defer func() {
		for _, acc := range accounts {
			acc.Close()
		}
	}()
	for _, spec := range sc.Accounts {
		acc, err := Open(spec, d.narrator)
		if err != nil {
			return err
		}
		accounts = append(accounts, acc)
	}

	for i, acc := range accounts {
		d.narrator.Step(accountTitle(i))
		d.narrator.Statement(acc.Statement())

		if ib, ok := AsInterestBearer(acc); ok {
			ib.AddInterest()
		}

		d.check("deposit", acc, acc.Deposit(sc.Deposit))
		d.check("withdraw", acc, acc.Withdraw(sc.Withdraw))
		d.narrator.Statement(acc.Statement())
	}
	return nil
}

// check 操作失敗已由 Notice 回報，這裡只留下 debug log
func (d *Demo) check(op string, acc Account, err error) {
	if err == nil {
		return
	}
	d.logger.WithError(err).WithFields(logrus.Fields{
		"op":      op,
		"account": acc.Number(),
		"balance": acc.Balance().StringFixed(2),
	}).Debug("operation rejected")
}

func accountTitle(i int) string {
	return "Account #" + strconv.Itoa(i+1)
}
