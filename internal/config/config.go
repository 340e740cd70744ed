package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Mongo         Mongo         `mapstructure:",squash"`
	DailyOverview DailyOverview `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Mongo concentra as configurações do banco de documentos. Os três bancos
// lógicos pertencem aos sistemas upstream; este serviço só lê.
type Mongo struct {
	URI                 string `mapstructure:"mongo_uri"`
	RetailDB            string `mapstructure:"mongo_retail_db"`
	BillingDB           string `mapstructure:"mongo_billing_db"`
	CustomerDB          string `mapstructure:"mongo_customer_db"`
	QueryTimeoutSeconds int    `mapstructure:"mongo_query_timeout_seconds"`
}

// QueryTimeout é o limite aplicado a cada consulta individual da agregação.
func (m Mongo) QueryTimeout() time.Duration {
	return time.Duration(m.QueryTimeoutSeconds) * time.Second
}

type DailyOverview struct {
	CronSchedule string `mapstructure:"daily_overview_cron"`
	Enabled      bool   `mapstructure:"daily_overview_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_RETAIL_DB", "apeirosretail")
	viper.SetDefault("MONGO_BILLING_DB", "apeirosretaildataprocessing")
	viper.SetDefault("MONGO_CUSTOMER_DB", "apeirosretailcustomermanagement")
	viper.SetDefault("MONGO_QUERY_TIMEOUT_SECONDS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Relatório diário de bills por loja
	viper.SetDefault("DAILY_OVERVIEW_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DAILY_OVERVIEW_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

// loadEnvFile procura o arquivo .env nas localizações usuais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
