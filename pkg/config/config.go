package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"katydid-common-contact/pkg/rule"
)

var (
	// ErrReadConfig 配置文件读取失败
	ErrReadConfig = errors.New("read config failed")

	// ErrInvalidConfig 配置内容不合法
	ErrInvalidConfig = errors.New("invalid config")
)

// EnvPrefix 环境变量前缀，如 CONTACT_LOG_LEVEL 覆盖 log.level
const EnvPrefix = "CONTACT"

// ============================================================================
// 配置定义
// ============================================================================

// Config 联系方式验证配置
type Config struct {
	// Rules 启用的规则名称，按顺序附加到列表
	// 可选值见 rule.DefaultRegistry().Names()
	Rules []string `mapstructure:"rules" validate:"required,min=1,dive,required"`

	// Log 日志配置
	Log Log `mapstructure:"log"`
}

// Log 日志配置
type Log struct {
	// Level 日志级别：debug / info / warn / error
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`

	// Format 输出格式：console / json
	Format string `mapstructure:"format" validate:"oneof=console json"`

	// File 日志文件路径，为空时输出到标准错误
	File string `mapstructure:"file"`

	// MaxSizeMB 单个日志文件的最大大小（MB），仅 File 非空时生效
	MaxSizeMB int `mapstructure:"max_size_mb" validate:"gte=0"`

	// MaxBackups 保留的旧日志文件数量
	MaxBackups int `mapstructure:"max_backups" validate:"gte=0"`

	// MaxAgeDays 旧日志文件的保留天数
	MaxAgeDays int `mapstructure:"max_age_days" validate:"gte=0"`

	// Compress 是否压缩旧日志文件
	Compress bool `mapstructure:"compress"`
}

// DefaultRules 默认启用的规则
var DefaultRules = []string{
	rule.NameEmail,
	rule.NameBelgiumPhone,
	rule.NameFrenchPhone,
	rule.NameCountryCode,
}

var (
	// validate 配置校验器单例
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidate() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("rules", DefaultRules)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
}

// Default 返回默认配置
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// 默认值本身合法，只有环境变量覆盖非法时才会走到这里
		return &Config{
			Rules: append([]string(nil), DefaultRules...),
			Log:   Log{Level: "info", Format: "console", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 28},
		}
	}
	return cfg
}

// Load 加载配置
// 优先级：环境变量（CONTACT_*） > 配置文件 > 默认值
// path 为空时只使用默认值和环境变量，支持 yaml / json / toml 等 viper 识别的格式
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := getValidate().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BuildRules 按配置顺序从规则目录创建规则，reg 为 nil 时使用全局目录
func (c *Config) BuildRules(reg *rule.Registry) ([]rule.Rule, error) {
	if reg == nil {
		reg = rule.DefaultRegistry()
	}
	rules, err := reg.Build(c.Rules...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return rules, nil
}
