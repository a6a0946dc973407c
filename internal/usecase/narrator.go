package usecase

import "github.com/JoeShih716/go-savings-account/internal/domain"

// Narrator 負責把示範流程呈現給使用者
// 帳戶操作結果經由 domain.Notifier 送達，流程標記與帳戶資訊則由 Demo 直接呼叫
type Narrator interface {
	domain.Notifier
	// Banner 整個示範的開頭與結尾
	Banner(title string)
	// Section 開始一段示範
	Section(title string)
	// Step 開始一個操作步驟
	Step(title string)
	// Statement 顯示帳戶資訊
	Statement(st domain.Statement)
}
