// pkg/supabase/config.go
//
// Configuration for the ClaimsIQ Supabase project. Two profiles exist with
// deliberately different failure policies: the public profile degrades to a
// non-functional client with a single warning (the web bundle ships the same
// values, so a missing key is survivable), while the admin profile refuses
// to start without its URL and secret key.

package supabase

import (
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Environment keys. The anon key kept its legacy alias when Supabase renamed
// it to "publishable key"; the old name wins when both are set.
const (
	EnvPublicURL      = "VITE_SUPABASE_URL"
	EnvAnonKey        = "VITE_SUPABASE_ANON_KEY"
	EnvPublishableKey = "VITE_SUPABASE_PUBLISHABLE_KEY"

	EnvAdminURL  = "SUPABASE_URL"
	EnvSecretKey = "SUPABASE_SECRET_KEY"
)

var validate = validator.New()

// PublicConfig holds the anonymous-access connection profile.
type PublicConfig struct {
	URL     string
	AnonKey string
}

// Complete reports whether both required values are present.
func (c PublicConfig) Complete() bool {
	return c.URL != "" && c.AnonKey != ""
}

// AdminConfig holds the privileged connection profile for the seeder.
type AdminConfig struct {
	URL       string `validate:"required,url"`
	SecretKey string `validate:"required"`
}

// ResolvePublicConfig reads the public profile from the environment.
// Missing values are logged once and carried as empty strings; callers get
// a config either way. Never makes network calls.
func ResolvePublicConfig(log *zap.Logger) PublicConfig {
	_ = godotenv.Load()

	v := viper.New()
	_ = v.BindEnv("url", EnvPublicURL)
	_ = v.BindEnv("anon_key", EnvAnonKey, EnvPublishableKey)

	cfg := PublicConfig{
		URL:     v.GetString("url"),
		AnonKey: v.GetString("anon_key"),
	}

	var missing []string
	if cfg.URL == "" {
		missing = append(missing, EnvPublicURL)
	}
	if cfg.AnonKey == "" {
		// Either variable satisfies the key; name both for the operator.
		missing = append(missing, EnvAnonKey+"|"+EnvPublishableKey)
	}
	if len(missing) > 0 {
		log.Warn("Missing Supabase configuration, public client will not be functional",
			zap.Strings("missing", missing))
	}

	return cfg
}

// ResolveAdminConfig reads the privileged profile from the environment.
// Unlike the public profile this is hard-fail: the returned error names the
// first missing variable so the operator knows what to export.
func ResolveAdminConfig() (AdminConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	_ = v.BindEnv("url", EnvAdminURL)
	_ = v.BindEnv("secret_key", EnvSecretKey)

	cfg := AdminConfig{
		URL:       v.GetString("url"),
		SecretKey: v.GetString("secret_key"),
	}

	if cfg.URL == "" {
		return AdminConfig{}, cerr.Newf("%s is not set", EnvAdminURL)
	}
	if cfg.SecretKey == "" {
		return AdminConfig{}, cerr.Newf("%s is not set", EnvSecretKey)
	}
	if err := validate.Struct(cfg); err != nil {
		return AdminConfig{}, cerr.Wrapf(err, "%s is not a valid URL", EnvAdminURL)
	}

	return cfg, nil
}
