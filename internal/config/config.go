package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// CurrentVersion은 지원하는 설정 파일 버전이다.
const CurrentVersion = 1

// DefaultTimeoutMS는 셸 조회의 기본 제한 시간(ms)이다.
const DefaultTimeoutMS = 5000

// Config는 envpath 설정 파일의 최상위 구조체다.
type Config struct {
	Version       int      `toml:"version"`
	Debug         bool     `toml:"debug"`
	TimeoutMS     int      `toml:"timeout_ms"`
	ValidatePaths *bool    `toml:"validate_paths"`
	ExtraPaths    []string `toml:"extra_paths"`
	ConfigFiles   []string `toml:"config_files"`
}

// Default는 기본값이 채워진 Config를 반환한다.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath는 home 기준 기본 설정 파일 경로를 반환한다.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "envpath", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다. 파일이 없으면 기본값을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// IsValidatePaths는 validate_paths 설정값을 반환한다.
func (c *Config) IsValidatePaths() bool {
	if c.ValidatePaths == nil {
		return true
	}
	return *c.ValidatePaths
}

// Timeout은 timeout_ms를 time.Duration으로 반환한다.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.ValidatePaths == nil {
		t := true
		c.ValidatePaths = &t
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = DefaultTimeoutMS
	}
}

func (c *Config) validate() error {
	if c.Version > CurrentVersion {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("config.Load: %w: timeout_ms는 0 이상이어야 합니다 (%d)", ErrConfig, c.TimeoutMS)
	}
	for _, f := range c.ConfigFiles {
		if f == "" {
			return fmt.Errorf("config.Load: %w: config_files에 빈 항목", ErrConfig)
		}
	}
	return nil
}
