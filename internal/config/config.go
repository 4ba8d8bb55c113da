package config

import (
	"os"
	"strings"
)

// AppVersion отдаётся в /health
const AppVersion = "1.0.0"

type Config struct {
	Bind               string
	PassTypeIdentifier string
	TeamIdentifier     string
	OrganizationName   string
	WebServiceURL      string
	CertsDir           string
	GeneratedDir       string
	KeyPassword        string
	EnableSwagger      bool
	Version            string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	swag := strings.EqualFold(getenv("ENABLE_SWAGGER", "false"), "true")
	return Config{
		Bind:               getenv("BIND", ":3000"),
		PassTypeIdentifier: getenv("PASS_TYPE_ID", "pass.com.needsomevibe.passcard"),
		TeamIdentifier:     getenv("TEAM_ID", "XFL8CQ52JZ"),
		OrganizationName:   getenv("ORG_NAME", "PassCard"),
		WebServiceURL:      getenv("WEB_SERVICE_URL", ""),
		CertsDir:           getenv("CERTS_DIR", "certificates"),
		GeneratedDir:       getenv("GENERATED_DIR", "generated"),
		KeyPassword:        getenv("PASS_KEY_PASSWORD", ""),
		EnableSwagger:      swag,
		Version:            AppVersion,
	}
}
