package console

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-savings-account/internal/domain"
	"github.com/JoeShih716/go-savings-account/internal/usecase"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestStatementStandard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Statement(domain.NewAccount("40817810099910004312", "Fedor", d("56999.75")).Statement())

	out := buf.String()
	require.Contains(t, out, "Account number: 40817810099910004312\n")
	require.Contains(t, out, "Owner: Fedor\n")
	require.Contains(t, out, "Balance: 56999.75\n")
	require.NotContains(t, out, "Interest rate")
}

func TestStatementSavings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Statement(domain.NewSavingsAccount("1", "A", d("527.5"), d("5.5")).Statement())

	out := buf.String()
	require.Contains(t, out, "Balance: 527.50\n")
	require.Contains(t, out, "Interest rate: 5.5%\n")
	require.Contains(t, out, "Projected annual income: 29.01\n")
}

func TestNotifyThroughAccount(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	s := domain.NewSavingsAccount("7", "A", d("-1"), d("-3"), domain.WithNotifier(p))
	_ = s.Deposit(d("0"))
	_ = s.Deposit(d("1000"))
	_ = s.Withdraw(d("150000"))
	_ = s.Withdraw(d("250.5"))
	s.Close()

	require.Equal(t,
		"Error: initial balance cannot be negative (-1.00). Set to 0.\n"+
			"Error: interest rate cannot be negative (-3.0%). Set to 0%.\n"+
			"Error: amount must be positive!\n"+
			"Deposited: 1000.00\n"+
			"Warning: withdrawal of 150000.00 exceeds the savings account limit!\n"+
			"A regular account is recommended for large transactions.\n"+
			"Error: insufficient funds!\n"+
			"Requested: 150000.00, available: 1000.00\n"+
			"Withdrawn: 250.50\n"+
			"Account 7 closed.\n",
		buf.String())
}

func TestNotifyInterest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	domain.NewSavingsAccount("1", "A", d("100000"), d("5.5"), domain.WithNotifier(p)).AddInterest()
	require.Equal(t, "Interest added at 5.5%: 5500.00\n", buf.String())
}

// 完整示範的輸出順序
func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	demo := usecase.NewDemo(NewPrinter(&buf), logger)
	acc := demo.RunStandard(usecase.StandardScenario{
		AccountSpec: usecase.AccountSpec{Number: "1", Owner: "A", Balance: d("50000")},
		Deposit:     d("15000.50"),
		Withdraw:    d("8000.75"),
		Overdraw:    d("70000"),
	})
	acc.Close()

	require.Equal(t, `

********** Standard account **********

=== Account information ===
Account number: 1
Owner: A
Balance: 50000.00

--- Deposit ---
Deposited: 15000.50

--- Withdrawal ---
Withdrawn: 8000.75

--- Withdrawal exceeding balance ---
Error: insufficient funds!
Requested: 70000.00, available: 56999.75

=== Account information ===
Account number: 1
Owner: A
Balance: 56999.75
Account 1 closed.
`, buf.String())
}
