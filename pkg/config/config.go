package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e opcionalmente arquivo).
type Config struct {
	App  AppConfig
	API  APIConfig
	Stub StubConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig configuração do serviço remoto de estoque.
type APIConfig struct {
	BaseURL        string // ex. https://almoxarifado.example.com (sem barra final)
	TimeoutSeconds int
	ReportOutput   string // caminho do PDF gerado por `-relatorio`
}

// Timeout devolve o timeout de rede como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StubConfig configuração do servidor stub local.
type StubConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de arquivo).
// As env vars têm prioridade. Nomes esperados: APP_ENV, API_BASE_URL, STUB_PORT, etc.
func Load() (*Config, error) {
	// Carrega .env se existir; não é crítico quando ausente
	_ = godotenv.Load()

	v := viper.New()

	// Opcional: arquivo de configuração (config.env)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos erro se não existir

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "estoque-client"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_BASE_URL", "http://localhost:3000"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT", 15),
			ReportOutput:   getString(v, "REPORT_OUTPUT", "relatorio-estoque.pdf"),
		},
		Stub: StubConfig{
			Host: getString(v, "STUB_HOST", "127.0.0.1"),
			Port: getInt(v, "STUB_PORT", 3000),
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL não pode ser vazio")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
