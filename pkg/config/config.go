package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la terminal (lectura vía Viper desde env
// y opcionalmente archivo .env).
type Config struct {
	App   AppConfig
	API   APIConfig
	State StateConfig
	Log   LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend OmniPOS consumido por HTTP.
// Todo el tráfico de aplicación vive bajo el prefijo versionado /v1.
type APIConfig struct {
	BaseURL string // ej. http://localhost:8081
	Timeout time.Duration
}

// StateConfig almacenamiento duradero del cliente: tokens y snapshots de los
// stores persistidos (equivalente del localStorage del navegador).
type StateConfig struct {
	Dir string // directorio de estado; por defecto ~/.omnipos
}

// LogConfig nivel y destino del log estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// OMNIPOS_API_URL, OMNIPOS_STATE_DIR, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.omnipos")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "omnipos-terminal"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "OMNIPOS_API_URL", "http://localhost:8081"), "/"),
			Timeout: time.Duration(getInt(v, "OMNIPOS_API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		State: StateConfig{
			Dir: getString(v, "OMNIPOS_STATE_DIR", defaultStateDir()),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// defaultStateDir resuelve ~/.omnipos; si HOME no está disponible usa el
// directorio de trabajo.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".omnipos"
	}
	return filepath.Join(home, ".omnipos")
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
