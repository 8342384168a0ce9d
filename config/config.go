package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"VAULT_SERVER_"`
	Log      LogConfig      `envPrefix:"VAULT_LOG_"`
	Database DatabaseConfig `envPrefix:"VAULT_DB_"`
	Session  SessionConfig  `envPrefix:"VAULT_SESSION_"`
	Admin    AdminConfig    `envPrefix:"VAULT_ADMIN_"`
	Auth     AuthConfig     `envPrefix:"VAULT_AUTH_"`
	Contact  ContactConfig  `envPrefix:"VAULT_CONTACT_"`
	Buttons  ButtonsConfig  `envPrefix:"VAULT_BUTTONS_"`
}

type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"3000"`
	Host      string `env:"HOST" envDefault:"localhost"`
	StaticDir string `env:"STATIC_DIR" envDefault:""`
}

type LogConfig struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	Format     string `env:"FORMAT" envDefault:"json"`
	OutputPath string `env:"OUTPUT" envDefault:"stdout"`
}

type DatabaseConfig struct {
	Driver      string `env:"DRIVER" envDefault:"sqlite"`
	DSN         string `env:"DSN" envDefault:"data/accounts.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

type SessionConfig struct {
	Name     string        `env:"NAME" envDefault:"vault_session"`
	Store    string        `env:"STORE" envDefault:"database"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"2h"`
	Path     string        `env:"PATH" envDefault:"/"`
	Domain   string        `env:"DOMAIN" envDefault:""`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	HttpOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	SameSite string        `env:"SAME_SITE" envDefault:"lax"`

	// LegacyMaxAge bounds the old token+timestamp scheme still accepted
	// from pages that have not migrated to cookie sessions.
	LegacyMaxAge time.Duration `env:"LEGACY_MAX_AGE" envDefault:"2h"`
}

type AdminConfig struct {
	// Password is a single process-wide shared secret protecting mutation
	// endpoints. A shared password with no per-admin identity is a known
	// weak point of this tool; see DESIGN.md.
	Password string `env:"PASSWORD" envDefault:"admin123"`

	// AllowedEmails lists the accounts granted the admin role when they
	// sign in through the identity provider.
	AllowedEmails []string `env:"ALLOWED_EMAILS" envSeparator:"," envDefault:"wanghaitao@sucdri.com"`
}

type AuthConfig struct {
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"10"`
	TokenSecret string        `env:"TOKEN_SECRET" envDefault:"change-me"`
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY" envDefault:"2h"`
	Issuer      string        `env:"ISSUER" envDefault:"gg-mange"`
}

type ContactConfig struct {
	Name   string `env:"NAME" envDefault:"王海涛"`
	Email  string `env:"EMAIL" envDefault:"wanghaitao@sucdri.com"`
	OpenID string `env:"OPEN_ID" envDefault:"ou_f28f2c1dfe74461b2ca055dfe2afe20b"`
}

type ButtonsConfig struct {
	// File optionally points at a YAML file overriding the built-in
	// button defaults at startup.
	File string `env:"FILE" envDefault:""`
}

func LoadConfig(cfg any) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	return env.Parse(cfg)
}
