package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

var (
	// appConfig holds *Config so reads never take a lock.
	appConfig atomic.Value
	configMu  sync.Mutex // write-side mutex
	configDir = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Admin    AdminConfig    `mapstructure:"admin"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	School   SchoolConfig   `mapstructure:"school"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type UploadConfig struct {
	Path          string `mapstructure:"path"`
	URLPrefix     string `mapstructure:"url_prefix"`
	MaxSizeMB     int    `mapstructure:"max_size_mb"`
	CacheControl  string `mapstructure:"cache_control"`
	MaxBodySizeMB int    `mapstructure:"max_body_size_mb"` // non-upload requests
}

// AdminConfig is the single admin credential pair. PasswordHash is a bcrypt
// hash; the plaintext is never stored server-side.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	SSL      bool   `mapstructure:"ssl"`
	AdminTo  string `mapstructure:"admin_to"` // lead notifications go here
}

// SchoolConfig is the static site information served by /api/webinfo.
type SchoolConfig struct {
	Name    string `mapstructure:"name"`
	Tagline string `mapstructure:"tagline"`
	Email   string `mapstructure:"email"`
	Phone   string `mapstructure:"phone"`
	Address string `mapstructure:"address"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Get returns a snapshot of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceReleaseSafety()
	log.Println("✅ configuration loaded")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/school_site.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "school_site")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("upload.path", "uploads/photos")
	v.SetDefault("upload.url_prefix", "/uploads/photos/")
	v.SetDefault("upload.max_size_mb", 5)
	v.SetDefault("upload.cache_control", "public, max-age=86400")
	v.SetDefault("upload.max_body_size_mb", 2)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.ssl", false)
	v.SetDefault("smtp.admin_to", "reyanshschool@gmail.com")
	v.SetDefault("school.name", "Reyansh School")
	v.SetDefault("school.tagline", "Nurturing Young Minds for a Brighter Tomorrow")
	v.SetDefault("school.email", "reyanshschool@gmail.com")
	v.SetDefault("school.phone", "")
	v.SetDefault("school.address", "")
	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000"})

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  no config file found, using environment variables and defaults")
		} else {
			log.Fatalf("❌ failed to read config file: %v", err)
		}
	}

	// Environment override. Every key maps to a SCHOOL_SITE_ variable,
	// e.g. server.port -> SCHOOL_SITE_SERVER_PORT.
	v.SetEnvPrefix("SCHOOL_SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore parses the configuration and swaps it in atomically.
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ failed to parse configuration: %v", err)
		return
	}

	if tempConfig.Server.Mode != "release" {
		if tempConfig.JWT.Secret == "" {
			log.Println("⚠️  [dev mode] jwt.secret is unset, using an insecure development key")
			tempConfig.JWT.Secret = "school_site_dev_secret"
		}
	}

	appConfig.Store(&tempConfig)
}

// enforceReleaseSafety refuses to start a release-mode server with an
// unset JWT secret or admin credential.
func enforceReleaseSafety() {
	curr := Get()
	if curr.Server.Mode != "release" {
		return
	}
	if curr.JWT.Secret == "" || curr.JWT.Secret == "school_site_dev_secret" {
		log.Fatal("❌ release mode requires a secure jwt.secret\nset SCHOOL_SITE_JWT_SECRET or jwt.secret in the config file")
	}
	if curr.Admin.PasswordHash == "" {
		log.Fatal("❌ release mode requires admin.password_hash (bcrypt)\nset SCHOOL_SITE_ADMIN_PASSWORD_HASH or admin.password_hash in the config file")
	}
}
