package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Paths      Paths      `mapstructure:",squash"`
	Thresholds Thresholds `mapstructure:",squash"`
	Analysis   Analysis   `mapstructure:",squash"`
	RandomSeed int64      `mapstructure:"random_seed"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Paths struct {
	Dataset string `mapstructure:"dataset_path"`
	Outputs string `mapstructure:"outputs_dir"`
}

// Thresholds concentra os limites das regras heurísticas de diagnóstico
type Thresholds struct {
	LowCTR      float64 `mapstructure:"threshold_low_ctr"`
	MinSpend    float64 `mapstructure:"threshold_min_spend"`
	ROASDrop    float64 `mapstructure:"threshold_roas_drop"`
	CPMIncrease float64 `mapstructure:"threshold_cpm_increase"`
	CTRDrop     float64 `mapstructure:"threshold_ctr_drop"`
	AOVDrop     float64 `mapstructure:"threshold_aov_drop"`
	CPCSpike    float64 `mapstructure:"threshold_cpc_spike"`
}

type Analysis struct {
	WindowDays         int `mapstructure:"analysis_window_days"`
	TopPerformers      int `mapstructure:"analysis_top_performers"`
	MaxRecommendations int `mapstructure:"analysis_max_recommendations"`
}

func SetDefaults() {
	viper.SetDefault("DATASET_PATH", "data/ads_spend.csv")
	viper.SetDefault("OUTPUTS_DIR", "outputs")

	viper.SetDefault("THRESHOLD_LOW_CTR", 0.012)    // CTR abaixo disso marca o criativo como fraco
	viper.SetDefault("THRESHOLD_MIN_SPEND", 1000.0) // Gasto mínimo para o criativo ser considerado
	viper.SetDefault("THRESHOLD_ROAS_DROP", 0.05)   // Queda relativa de ROAS que caracteriza um drop
	viper.SetDefault("THRESHOLD_CPM_INCREASE", 1.05)
	viper.SetDefault("THRESHOLD_CTR_DROP", 0.95)
	viper.SetDefault("THRESHOLD_AOV_DROP", 0.95)
	viper.SetDefault("THRESHOLD_CPC_SPIKE", 1.05)

	viper.SetDefault("ANALYSIS_WINDOW_DAYS", 14)        // Janelas adjacentes de 14 dias
	viper.SetDefault("ANALYSIS_TOP_PERFORMERS", 5)      // Criativos exemplares considerados
	viper.SetDefault("ANALYSIS_MAX_RECOMMENDATIONS", 3) // Piores criativos reescritos por execução

	viper.SetDefault("RANDOM_SEED", 42)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando defaults e variáveis de ambiente")
}
