package xzap

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ProjectsTask/LandSwapCore/logger"
)

type ctxKey struct{}

var (
	setupOnce sync.Once
	global    *zap.Logger
)

// CtxLogger 携带 context 的日志器
// 通过 xzap.WithContext(ctx).Info(...) 的方式在任意位置打日志
type CtxLogger struct {
	logger *zap.Logger
	ctx    context.Context
}

// SetUp 初始化全局日志器
// console 模式输出到标准输出, file 模式输出到滚动文件 (lumberjack)
func SetUp(c logger.LogConf) (*zap.Logger, error) {
	var err error
	setupOnce.Do(func() {
		var level zapcore.Level
		if err = level.UnmarshalText([]byte(defaultLevel(c.Level))); err != nil {
			return
		}

		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder := zapcore.NewJSONEncoder(encCfg)

		var sink zapcore.WriteSyncer
		switch c.Mode {
		case "file":
			sink = zapcore.AddSync(&lumberjack.Logger{
				Filename:   filepath.Join(c.Path, c.ServiceName+".log"),
				MaxSize:    defaultInt(c.MaxSize, 128),
				MaxBackups: defaultInt(c.MaxBackups, 10),
				MaxAge:     defaultInt(c.KeepDays, 7),
				Compress:   c.Compress,
			})
		default:
			sink = zapcore.AddSync(os.Stdout)
		}

		core := zapcore.NewCore(encoder, sink, level)
		global = zap.New(core, zap.AddCaller()).
			With(zap.String("service", c.ServiceName))
		zap.ReplaceGlobals(global)
	})
	if err != nil {
		return nil, err
	}
	return global, nil
}

// WithContext 返回绑定 context 的日志器
// 未经 SetUp 初始化时退化为 zap 全局日志器, 便于测试场景直接使用
func WithContext(ctx context.Context) *CtxLogger {
	l := global
	if l == nil {
		l = zap.L()
	}
	if ctxLogger, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		l = ctxLogger
	}
	return &CtxLogger{logger: l, ctx: ctx}
}

// NewContext 将带有附加字段的日志器写入 context
func NewContext(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxKey{}, WithContext(ctx).logger.With(fields...))
}

func (c *CtxLogger) Debug(msg string, fields ...zap.Field) {
	c.logger.Debug(msg, fields...)
}

func (c *CtxLogger) Info(msg string, fields ...zap.Field) {
	c.logger.Info(msg, fields...)
}

func (c *CtxLogger) Warn(msg string, fields ...zap.Field) {
	c.logger.Warn(msg, fields...)
}

func (c *CtxLogger) Error(msg string, fields ...zap.Field) {
	c.logger.Error(msg, fields...)
}

func defaultLevel(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
