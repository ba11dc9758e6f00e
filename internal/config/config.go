package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Import     Import     `mapstructure:",squash"`
	RFVRebuild RFVRebuild `mapstructure:",squash"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Import controla o pipeline de importação de dados históricos.
// SellerAliases é carregado de IMPORT_SELLER_ALIASES no formato
// "apelido=id,apelido=id".
type Import struct {
	MaxErrorRate  float64        `mapstructure:"import_max_error_rate"`
	MaxMessages   int            `mapstructure:"import_max_messages"`
	SellerAliases map[string]int `mapstructure:"-"`
}

// RFVRebuild controla o job noturno de reconstrução dos perfis RFV.
type RFVRebuild struct {
	CronSchedule string `mapstructure:"rfv_rebuild_cron"`
	Enabled      bool   `mapstructure:"rfv_rebuild_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/clinic")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do pipeline de importação
	viper.SetDefault("IMPORT_MAX_ERROR_RATE", 0.10) // Disjuntor: aborta acima de 10% de linhas com erro
	viper.SetDefault("IMPORT_MAX_MESSAGES", 200)    // Limite de mensagens de erro gravadas no log de auditoria
	viper.SetDefault("IMPORT_SELLER_ALIASES", "")

	// Defaults da reconstrução noturna de RFV
	viper.SetDefault("RFV_REBUILD_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RFV_REBUILD_ENABLED", false)

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

	config.Import.SellerAliases = parseSellerAliases(viper.GetString("IMPORT_SELLER_ALIASES"))

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// parseSellerAliases interpreta o mapeamento manual de apelidos de vendedor:
// "Dra. Ana=12,Joao V=7". Entradas malformadas são ignoradas com aviso.
func parseSellerAliases(raw string) map[string]int {
	aliases := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		alias, idText, found := strings.Cut(pair, "=")
		if !found {
			logrus.Warn("Entrada de apelido de vendedor malformada, ignorando: ", pair)
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(idText))
		if err != nil {
			logrus.Warn("Apelido de vendedor com id não numérico, ignorando: ", pair)
			continue
		}

		aliases[strings.TrimSpace(alias)] = id
	}
	return aliases
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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
