package config

import (
	_ "embed"
	"os"

	"github.com/quintans/faults"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-savings-account/internal/usecase"
)

//go:embed default.yaml
var defaultScenario []byte

// DefaultScenario 內建的示範腳本
func DefaultScenario() (usecase.Scenario, error) {
	return parseScenario(defaultScenario)
}

// LoadScenario 讀取示範腳本，path 為空時使用內建腳本
//
// 參數:
//
//	path: YAML 檔案路徑
//
// 回傳:
//
//	usecase.Scenario: 補齊預設值後的腳本
//	error: 讀檔、解析或驗證錯誤
func LoadScenario(path string) (usecase.Scenario, error) {
	if path == "" {
		return DefaultScenario()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return usecase.Scenario{}, faults.Errorf("reading scenario %s: %w", path, err)
	}
	sc, err := parseScenario(data)
	if err != nil {
		return usecase.Scenario{}, faults.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

func parseScenario(data []byte) (usecase.Scenario, error) {
	var sc usecase.Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return usecase.Scenario{}, faults.Errorf("parsing scenario: %w", err)
	}

	// 補全預設值 (如果 yaml 沒寫)
	sc.Standard.Kind = usecase.KindStandard
	sc.Savings.Kind = usecase.KindSavings
	for i := range sc.Portfolio.Accounts {
		acc := &sc.Portfolio.Accounts[i]
		switch acc.Kind {
		case "":
			acc.Kind = usecase.KindStandard
		case usecase.KindStandard, usecase.KindSavings:
		default:
			return usecase.Scenario{}, faults.Errorf("portfolio account %d (%s): unknown kind %q", i+1, acc.Number, acc.Kind)
		}
	}
	return sc, nil
}
