package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo).
type Config struct {
	App   AppConfig
	API   APIConfig
	Store StoreConfig
	Log   LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend HTTP contra el que arranca la sesión.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StoreConfig configuración del caché local de sesión (SQLite).
type StoreConfig struct {
	Path string
}

// LogConfig configuración del logger.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_BASE_URL, STORE_PATH, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "oxford-portal"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 30),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", defaultStorePath()),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// defaultStorePath ubica el caché de sesión en el home del usuario; si no hay
// home disponible cae al directorio de trabajo.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "oxford-portal-session.db"
	}
	return filepath.Join(home, ".oxford-portal", "session.db")
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
