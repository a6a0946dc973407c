package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonPositiveAmount 金額必須為正數
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError 提款金額超過餘額時回傳，保留請求金額與當下可用餘額
type InsufficientFundsError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: requested %s, available %s",
		ErrInsufficientFunds, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// Is 讓 errors.Is(err, ErrInsufficientFunds) 成立
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
