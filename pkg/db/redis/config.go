// Package redis предоставляет общую реализацию клиента Redis.
package redis

import (
	"fmt"
	"time"
)

// Значения по умолчанию для Redis.
// Должны быть синхронизированы с тегами env-default в RedisConfig сервиса.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 6379
	DefaultPassword = ""
	DefaultDB       = 0
	DefaultPoolSize = 10
	DefaultTimeout  = 5 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию Redis по умолчанию.
func DefaultConfig() *Config {
	return &Config{
		Host:         DefaultHost,
		Port:         DefaultPort,
		Password:     DefaultPassword,
		DB:           DefaultDB,
		PoolSize:     DefaultPoolSize,
		DialTimeout:  DefaultTimeout,
		ReadTimeout:  DefaultTimeout,
		WriteTimeout: DefaultTimeout,
	}
}

// Address возвращает адрес в формате host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
