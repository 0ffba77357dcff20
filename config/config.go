// Package config 读取 pxshot 命令行工具的客户端配置
//
// 配置文件为 TOML，默认路径 ~/.config/pxshot/config.toml:
//
//	api_key = "px_your_api_key"
//	base_url = "https://api.pxshot.com"
//	timeout_ms = 30000
//
// 文件缺失不算错误: 回落到环境变量 PXSHOT_API_KEY 与内置默认值。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config CLI 所需的最小客户端配置
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

const defaultConfigPath = "~/.config/pxshot/config.toml"

// envAPIKey API 密钥环境变量，优先级低于配置文件
const envAPIKey = "PXSHOT_API_KEY"

// Load 定位并解析配置文件，缺失时回落到环境变量与默认值
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		var raw struct {
			APIKey    string `toml:"api_key"`
			BaseURL   string `toml:"base_url"`
			TimeoutMS int64  `toml:"timeout_ms"`
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.APIKey = strings.TrimSpace(raw.APIKey)
		cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
		if raw.TimeoutMS > 0 {
			cfg.Timeout = time.Duration(raw.TimeoutMS) * time.Millisecond
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(os.Getenv(envAPIKey))
	}
	return cfg, nil
}

// resolvePath 选定配置路径并展开前导 ~
func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
