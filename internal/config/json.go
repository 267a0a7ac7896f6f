package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are written as strings ("30s", "6h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		ResetTokenTTL      Duration `json:"reset_token_ttl"`
		BcryptCost         int      `json:"bcrypt_cost"`
		AdminBaseURL       string   `json:"admin_base_url"`
		MaxPageSize        int      `json:"max_page_size"`
		LogLevel           string   `json:"log_level"`
		Version            string   `json:"version"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Transport    string   `json:"transport"`
		From         string   `json:"from"`
		SMTPHost     string   `json:"smtp_host"`
		SMTPPort     int      `json:"smtp_port"`
		SMTPUsername string   `json:"smtp_username"`
		SMTPPassword string   `json:"smtp_password"`
		HTTPEndpoint string   `json:"http_endpoint"`
		HTTPAPIKey   string   `json:"http_api_key"`
		Timeout      Duration `json:"timeout"`
	} `json:"mail,omitempty"`

	Workers struct {
		TokenSweepSchedule string `json:"token_sweep_schedule"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			ResetTokenTTL:      time.Duration(jsonCfg.App.ResetTokenTTL),
			BcryptCost:         jsonCfg.App.BcryptCost,
			AdminBaseURL:       jsonCfg.App.AdminBaseURL,
			MaxPageSize:        jsonCfg.App.MaxPageSize,
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
			CORSAllowedOrigins: jsonCfg.App.CORSAllowedOrigins,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Mail: Mail{
			Transport:    jsonCfg.Mail.Transport,
			From:         jsonCfg.Mail.From,
			SMTPHost:     jsonCfg.Mail.SMTPHost,
			SMTPPort:     jsonCfg.Mail.SMTPPort,
			SMTPUsername: jsonCfg.Mail.SMTPUsername,
			SMTPPassword: jsonCfg.Mail.SMTPPassword,
			HTTPEndpoint: jsonCfg.Mail.HTTPEndpoint,
			HTTPAPIKey:   jsonCfg.Mail.HTTPAPIKey,
			Timeout:      time.Duration(jsonCfg.Mail.Timeout),
		},
		Workers: Workers{
			TokenSweepSchedule: jsonCfg.Workers.TokenSweepSchedule,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
