package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Drivers soportados para identidad y almacenamiento.
const (
	DriverFirebase = "firebase"
	DriverLocal    = "local"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	Store    StoreConfig
	Firebase FirebaseConfig
	DB       DBConfig
	JWT      JWTConfig
	Sentry   SentryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	DevRoutes   bool   // monta /api/dev/* sin autenticación
	CORSOrigins string // lista separada por comas
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig selecciona el proveedor de identidad.
type AuthConfig struct {
	Driver         string // firebase | local
	AdminOnlyUsers bool   // exige rol admin en /auth/users
}

// StoreConfig selecciona el almacén jerárquico de datos.
type StoreConfig struct {
	Driver string // firebase | postgres | memory
}

// FirebaseConfig credenciales y URL del Realtime Database.
// Las credenciales se buscan primero en CredentialsFile, luego en storage/app y por último en CredentialsJSON.
type FirebaseConfig struct {
	CredentialsFile string
	CredentialsJSON string
	DatabaseURL     string
	ProjectID       string
}

// DBConfig configuración de PostgreSQL (driver de almacenamiento "postgres" y cuentas locales).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// Enabled indica si hay datos suficientes para conectarse.
func (c DBConfig) Enabled() bool {
	return c.DatabaseURL != "" || c.Host != ""
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens emitidos por el proveedor local.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// SentryConfig reporte de errores (opcional).
type SentryConfig struct {
	DSN string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, AUTH_DRIVER, FIREBASE_DATABASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "caja-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			DevRoutes:   getBool(v, "HTTP_DEV_ROUTES", false),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Auth: AuthConfig{
			Driver:         strings.ToLower(getString(v, "AUTH_DRIVER", DriverFirebase)),
			AdminOnlyUsers: getBool(v, "AUTH_ADMIN_ONLY_USERS", false),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getString(v, "STORE_DRIVER", DriverFirebase)),
		},
		Firebase: FirebaseConfig{
			CredentialsFile: getString(v, "FIREBASE_CREDENTIALS_FILE", "firebase_credentials.json"),
			CredentialsJSON: getString(v, "FIREBASE_CREDENTIALS_JSON", ""),
			DatabaseURL:     getString(v, "FIREBASE_DATABASE_URL", ""),
			ProjectID:       getString(v, "FIREBASE_PROJECT_ID", ""),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", ""),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "caja"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "caja-api"),
		},
		Sentry: SentryConfig{
			DSN: getString(v, "SENTRY_DSN", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate revisa combinaciones de drivers y credenciales obligatorias.
func (c *Config) Validate() error {
	var errs []error
	switch c.Auth.Driver {
	case DriverFirebase:
	case DriverLocal:
		if c.JWT.Secret == "" {
			errs = append(errs, errors.New("AUTH_DRIVER=local requiere JWT_SECRET"))
		}
	default:
		errs = append(errs, fmt.Errorf("AUTH_DRIVER desconocido: %q", c.Auth.Driver))
	}
	switch c.Store.Driver {
	case DriverFirebase, DriverMemory:
	case DriverPostgres:
		if !c.DB.Enabled() {
			errs = append(errs, errors.New("STORE_DRIVER=postgres requiere DATABASE_URL o DB_HOST"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER desconocido: %q", c.Store.Driver))
	}
	if c.Store.Driver == DriverFirebase && c.Firebase.DatabaseURL == "" {
		errs = append(errs, errors.New("STORE_DRIVER=firebase requiere FIREBASE_DATABASE_URL"))
	}
	return errors.Join(errs...)
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	return v.GetBool(key)
}
