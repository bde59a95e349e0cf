package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml
// beside the executable with coded defaults.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Parser   ParserConfig   `toml:"parser"`
	Planning PlanningConfig `toml:"planning"`
	AI       AIConfig       `toml:"ai"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds storage locations.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// ParserConfig holds the structural tokens used to locate the target
// file's two forecast-period columns.
type ParserConfig struct {
	PeriodAToken string `toml:"period_a_token"`
	PeriodBToken string `toml:"period_b_token"`
}

// PlanningConfig names every modeling constant the metrics layer uses.
// These are business assumptions carried over from the planning team's
// worksheet, not values derived from data.
type PlanningConfig struct {
	MinSkuShare           float64 `toml:"min_sku_share"`
	CapacityPerBrand      float64 `toml:"capacity_per_brand"`
	LaborHoursPerTon      float64 `toml:"labor_hours_per_ton"`
	MachineHoursPerTon    float64 `toml:"machine_hours_per_ton"`
	OperatorHoursPerMonth float64 `toml:"operator_hours_per_month"`
	BaseLeadTimeDays      float64 `toml:"base_lead_time_days"`
	MaterialCostPerTon    float64 `toml:"material_cost_per_ton"`
	LaborCostPerHour      float64 `toml:"labor_cost_per_hour"`
	OverheadBasePerTon    float64 `toml:"overhead_base_per_ton"`
	OverheadPerComplexity float64 `toml:"overhead_per_complexity"`
	GrowthSentinel        float64 `toml:"growth_sentinel"`
	RiskHighThreshold     float64 `toml:"risk_high_threshold"`
	RiskMediumThreshold   float64 `toml:"risk_medium_threshold"`
}

// AIConfig holds narrative-provider settings. The API key itself comes
// from the OPENAI_API_KEY environment variable, never from the file.
type AIConfig struct {
	Model       string  `toml:"model"`
	BaseURL     string  `toml:"base_url"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

// DefaultConfig returns the coded defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20518,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Parser: ParserConfig{
			PeriodAToken: "may",
			PeriodBToken: "w1",
		},
		Planning: PlanningConfig{
			MinSkuShare:           0.001,
			CapacityPerBrand:      1000,
			LaborHoursPerTon:      8,
			MachineHoursPerTon:    6,
			OperatorHoursPerMonth: 160,
			BaseLeadTimeDays:      7,
			MaterialCostPerTon:    800,
			LaborCostPerHour:      25,
			OverheadBasePerTon:    200,
			OverheadPerComplexity: 20,
			GrowthSentinel:        5,
			RiskHighThreshold:     3,
			RiskMediumThreshold:   1.5,
		},
		AI: AIConfig{
			Model:       "gpt-4o-mini",
			BaseURL:     "https://api.openai.com/v1",
			Temperature: 0.3,
			MaxTokens:   3000,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable's directory, falling
// back to defaults when the file does not exist.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if v := os.Getenv("PRODPLAN_AI_BASE_URL"); v != "" {
		config.AI.BaseURL = v
	}

	return config, nil
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory (and subdirectories) beside
// the executable and returns its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
