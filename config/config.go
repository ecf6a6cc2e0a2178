// config/config.go - 配置管理文件
package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"larpit/larp-directory/pkg/email"
)

var (
	Conf *AppConfig
	once sync.Once
)

// AppConfig 应用配置结构
type AppConfig struct {
	App      ApplicationConfig `koanf:"app"`
	Server   ServerConfig      `koanf:"server"`
	Database DatabaseConfig    `koanf:"database"`
	Redis    RedisConfig       `koanf:"redis"`
	Smtp     email.Config      `koanf:"smtp"`
	JWT      JWTConfig         `koanf:"jwt"`
}

type ApplicationConfig struct {
	// 运行环境: development, test, production
	Environment string `koanf:"environment"`
	// 站点地址，用于拼接确认链接，如 https://larpit.example
	BaseURL string `koanf:"base_url"`
	// 默认语言: fi, en, sv
	DefaultLanguage string `koanf:"default_language"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Driver       string `koanf:"driver"`
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"` // 数据库日志级别
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // 秒
}

type RedisConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // 小时
}

// IsProduction 是否生产环境
func (a ApplicationConfig) IsProduction() bool {
	return a.Environment == "production"
}

// validate 校验配置
// 生产环境必须配置邮件服务：确认邮件是审核流程的一部分，
// 静默缺失会让匿名提交永远停在待验证状态
func validate(conf *AppConfig) error {
	if conf.App.IsProduction() && conf.Smtp.Host == "" {
		return fmt.Errorf("生产环境必须配置 smtp.host，否则确认邮件无法发送")
	}
	if conf.App.DefaultLanguage == "" {
		conf.App.DefaultLanguage = "fi"
	}
	return nil
}

// Load 加载配置文件
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// 首先加载 .env 文件到环境变量
		if err = godotenv.Load(); err != nil {
			log.Printf("警告: 无法加载 .env 文件: %v", err)
		}

		k := koanf.New(".")

		// 加载配置文件
		if err = k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			err = fmt.Errorf("加载配置文件失败: %w", err)
			return
		}

		// 加载环境变量（会覆盖配置文件）
		if err = k.Load(env.Provider("", ".", func(s string) string {
			return strings.Replace(strings.ToLower(s), "_", ".", -1)
		}), nil); err != nil {
			log.Printf("加载环境变量失败: %v", err)
		}

		// 解析到结构体
		Conf = &AppConfig{}
		if err = k.Unmarshal("", Conf); err != nil {
			err = fmt.Errorf("解析配置失败: %w", err)
			return
		}

		if err = validate(Conf); err != nil {
			return
		}

		// 转换时间单位
		Conf.Server.ReadTimeout = Conf.Server.ReadTimeout * time.Second
		Conf.Server.WriteTimeout = Conf.Server.WriteTimeout * time.Second
	})

	return err
}

// MustLoad 加载配置，失败则 panic
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
}
