package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Conf struct {
	Output     string `mapstructure:"output"`   // stdout | file
	Path       string `mapstructure:"path"`     // file output only
	Level      string `mapstructure:"level"`    // debug | info | warn | error
	RotateSize int    `mapstructure:"rotate_size"` // MB per file
	RotateNum  int    `mapstructure:"rotate_num"`  // files kept
}

// New builds the application logger. File output rotates via lumberjack.
func New(conf Conf) (*zap.SugaredLogger, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	var ws zapcore.WriteSyncer
	switch conf.Output {
	case "file":
		if conf.RotateSize <= 0 {
			conf.RotateSize = 100
		}
		if conf.RotateNum <= 0 {
			conf.RotateNum = 10
		}
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    conf.RotateSize,
			MaxBackups: conf.RotateNum,
		})
	default:
		ws = zapcore.AddSync(os.Stdout)
	}

	core := zapcore.NewCore(encoder, ws, parseLevel(conf.Level))
	return zap.New(core, zap.AddCaller()).Sugar(), nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
