// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Host    string `toml:"host"`    // 服务器监听地址，如 "0.0.0.0"
	Port    int    `toml:"port"`    // 服务器监听端口，如 8000
}

// GatewayConfig 房间后端（遗留 PHP 网关）配置
type GatewayConfig struct {
	BaseURL        string `toml:"baseUrl"`        // 后端地址，如 "http://59.127.30.235:85/api"
	TimeoutSeconds int    `toml:"timeoutSeconds"` // 单次请求超时（秒），默认 10
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// FeedConfig 房间动态推送配置
// feedMode 为 "channel"（单机）或 "kafka"（多实例部署时通过 Kafka 扇出刷新事件）
type FeedConfig struct {
	FeedMode       string `toml:"feedMode"`       // "channel" 或 "kafka"
	HostPort       string `toml:"hostPort"`       // Kafka 服务器地址，如 "localhost:9092"
	RoomTopic      string `toml:"roomTopic"`      // 房间刷新事件主题
	Partition      int    `toml:"partition"`      // 分区数
	TimeoutSeconds int    `toml:"timeoutSeconds"` // 读写超时（秒）
}

// JWTConfig JWT 认证配置
type JWTConfig struct {
	Secret             string `toml:"secret"`             // JWT 签名密钥，建议 32 字符以上
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 有效期（分钟）
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 有效期（小时）
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig    `toml:"mainConfig"`    // 主配置
	GatewayConfig `toml:"gatewayConfig"` // 房间后端配置
	RedisConfig   `toml:"redisConfig"`   // Redis 配置
	LogConfig     `toml:"logConfig"`     // 日志配置
	FeedConfig    `toml:"feedConfig"`    // 推送配置
	JWTConfig     `toml:"jwtConfig"`     // JWT 配置
}

// config 全局配置单例，延迟加载
var config *Config

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() error {
	// 候选配置文件路径（优先加载本地配置）
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 忽略加载错误，使用默认值
	}
	return config
}
