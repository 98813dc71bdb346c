package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Pharma         Pharma         `mapstructure:",squash"`
	Analytics      Analytics      `mapstructure:",squash"`
	SnapshotWarmup SnapshotWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Cache define onde o último snapshot bem-sucedido fica persistido.
// Driver "postgres" usa o banco relacional; "bunt" usa um arquivo local.
type Cache struct {
	Driver   string `mapstructure:"cache_driver"`
	BuntPath string `mapstructure:"cache_bunt_path"`
}

// Pharma é a configuração do cliente da API do backend da farmácia.
type Pharma struct {
	URL         string `mapstructure:"pharma_url"`
	AccessToken string `mapstructure:"pharma_access_token"`
	PageSize    int    `mapstructure:"pharma_page_size"`
	MaxPages    int    `mapstructure:"pharma_max_pages"`
}

// Analytics carrega as constantes de negócio do motor de agregação.
// CostRatio e OverheadRatio são proxies fixos herdados da política comercial,
// expostos como configuração porque tendem a ser ajustados por cliente.
type Analytics struct {
	CostRatio     float64 `mapstructure:"analytics_cost_ratio"`
	OverheadRatio float64 `mapstructure:"analytics_overhead_ratio"`
	TrendDays     int     `mapstructure:"analytics_trend_days"`
	TopProducts   int     `mapstructure:"analytics_top_products"`
	Currency      string  `mapstructure:"analytics_currency"`
}

type SnapshotWarmup struct {
	CronSchedule string `mapstructure:"snapshot_warmup_cron"`
	Enabled      bool   `mapstructure:"snapshot_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_DRIVER", "bunt")
	viper.SetDefault("CACHE_BUNT_PATH", "snapshots.db")

	viper.SetDefault("PHARMA_URL", "https://api.pharmacy.local/api/v1")
	viper.SetDefault("PHARMA_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("PHARMA_PAGE_SIZE", 100)
	viper.SetDefault("PHARMA_MAX_PAGES", 16) // teto de páginas por endpoint

	viper.SetDefault("ANALYTICS_COST_RATIO", 0.72)     // proxy de custo sobre a receita
	viper.SetDefault("ANALYTICS_OVERHEAD_RATIO", 0.10) // proxy de despesas operacionais
	viper.SetDefault("ANALYTICS_TREND_DAYS", 730)      // série diária cobrindo ano atual + anterior
	viper.SetDefault("ANALYTICS_TOP_PRODUCTS", 10)
	viper.SetDefault("ANALYTICS_CURRENCY", "BRL")

	viper.SetDefault("SNAPSHOT_WARMUP_CRON", "0 */6 * * *") // a cada 6 horas
	viper.SetDefault("SNAPSHOT_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if config.Database.URL != "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
