package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/zhouzirui/movies-api/internal/logging"
)

// DefaultPort is used when PORT is unset.
const DefaultPort = "1234"

// DefaultAllowedOrigins is the CORS allow-list used when ALLOWED_ORIGINS is unset.
var DefaultAllowedOrigins = []string{
	"http://localhost:8080",
	"http://localhost:1234",
	"https://movies.com",
	"https://midu.dev",
}

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Data   DataConfig
	Log    LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		CORS:   loadCORSConfig(),
		Data:   DataConfig{Path: strings.TrimSpace(os.Getenv("MOVIES_DATA"))},
		Log:    logCfg,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// DataConfig locates the initial movie dataset. An empty path selects the
// embedded dataset.
type DataConfig struct {
	Path string
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  slog.Level
	Format logging.Format
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	return ParseAddr(os.Getenv("PORT"))
}

// ParseAddr turns a PORT value into a listen address.
func ParseAddr(port string) (ServerConfig, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = DefaultPort
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":1234" 或 "127.0.0.1:1234"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadCORSConfig() CORSConfig {
	raw, ok := os.LookupEnv("ALLOWED_ORIGINS")
	if !ok {
		return CORSConfig{AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...)}
	}
	return CORSConfig{AllowedOrigins: splitList(raw)}
}

func loadLogConfig() (LogConfig, error) {
	level, err := logging.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value: %w", err)
	}

	format, err := logging.ParseFormat(getEnvOrDefault("LOG_FORMAT", string(logging.FormatText)))
	if err != nil {
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value: %w", err)
	}

	return LogConfig{Level: level, Format: format}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
