package gdb

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config 数据库配置
type Config struct {
	User         string `toml:"user" mapstructure:"user" json:"user"`                                  // 用户名
	Password     string `toml:"password" mapstructure:"password" json:"password"`                      // 密码
	Host         string `toml:"host" mapstructure:"host" json:"host"`                                  // 主机地址
	Port         int    `toml:"port" mapstructure:"port" json:"port"`                                  // 端口
	Database     string `toml:"database" mapstructure:"database" json:"database"`                      // 库名
	MaxIdleConns int    `toml:"max_idle_conns" mapstructure:"max_idle_conns" json:"max_idle_conns"`    // 最大空闲连接数
	MaxOpenConns int    `toml:"max_open_conns" mapstructure:"max_open_conns" json:"max_open_conns"`    // 最大打开连接数
	MaxLifeTime  int    `toml:"max_life_time" mapstructure:"max_life_time" json:"max_life_time"`       // 连接最大存活时间 (秒)
	LogLevel     string `toml:"log_level" mapstructure:"log_level" json:"log_level"`                   // gorm 日志级别
}

// DSN 拼接 MySQL 连接串
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// NewDB 创建数据库连接 (GORM + MySQL)
func NewDB(c *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(c.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel(c.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed on get sql db")
	}
	if c.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(c.MaxLifeTime) * time.Second)
	}
	return db, nil
}

// MustNewDB 创建数据库连接, 失败直接 panic
func MustNewDB(c *Config) *gorm.DB {
	db, err := NewDB(c)
	if err != nil {
		panic(err)
	}
	return db
}

func logLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
