package utils

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger.go - настройка структурированного логирования (zap)
//
// Назначение:
// Единая точка инициализации логгера для всего приложения.
// Поддерживает JSON и text форматы, уровни debug/info/warn/error/fatal,
// вывод в stderr или файл.
//
// Использование:
//
//	logger := utils.InitGlobalLogger(utils.LogConfig{Level: "info", Format: "json"})
//	defer logger.Sync()
//	utils.Info("server started", utils.Component("api"))

// LogConfig - конфигурация логгера
type LogConfig struct {
	Level       string // debug, info, warn, error, fatal (default: info)
	Format      string // json или text (default: json)
	Output      string // путь к файлу; пусто = stderr
	Development bool   // режим разработки (человекочитаемый вывод)
}

// Logger оборачивает zap.Logger и добавляет доменные helpers
type Logger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

var (
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// parseLevel преобразует строковый уровень в zapcore.Level
// Неизвестные значения дают InfoLevel
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogger создает новый логгер с заданной конфигурацией
//
// При невозможности открыть файл вывода делает fallback на stderr
// (логгер не должен валить процесс из-за прав на директорию логов).
func InitLogger(config LogConfig) *Logger {
	level := parseLevel(config.Level)

	var encoderConfig zapcore.EncoderConfig
	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var encoder zapcore.Encoder
	if strings.ToLower(config.Format) == "text" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	// Выбор места вывода: файл или stderr
	var sink zapcore.WriteSyncer
	if config.Output != "" {
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			sink = zapcore.AddSync(os.Stderr)
		} else {
			sink = zapcore.AddSync(file)
		}
	} else {
		sink = zapcore.AddSync(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, level)

	opts := []zap.Option{zap.AddCaller()}
	if config.Development {
		opts = append(opts, zap.Development())
	}

	zapLogger := zap.New(core, opts...)

	return &Logger{
		Logger: zapLogger,
		sugar:  zapLogger.Sugar(),
	}
}

// InitGlobalLogger инициализирует глобальный логгер и возвращает его
func InitGlobalLogger(config LogConfig) *Logger {
	logger := InitLogger(config)
	SetGlobalLogger(logger)
	return logger
}

// SetGlobalLogger устанавливает глобальный логгер
func SetGlobalLogger(logger *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger возвращает глобальный логгер
// Если логгер не инициализирован, создает логгер по умолчанию
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	if globalLogger != nil {
		defer globalMu.RUnlock()
		return globalLogger
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = InitLogger(LogConfig{})
	}
	return globalLogger
}

// L - короткий alias для GetGlobalLogger
func L() *Logger {
	return GetGlobalLogger()
}

// With возвращает новый логгер с добавленными полями
func (l *Logger) With(fields ...zap.Field) *Logger {
	newLogger := l.Logger.With(fields...)
	return &Logger{
		Logger: newLogger,
		sugar:  newLogger.Sugar(),
	}
}

// WithComponent возвращает логгер с полем component
func (l *Logger) WithComponent(component string) *Logger {
	return l.With(zap.String("component", component))
}

// WithEndpoint возвращает логгер с полем endpoint (upstream путь)
func (l *Logger) WithEndpoint(endpoint string) *Logger {
	return l.With(zap.String("endpoint", endpoint))
}

// WithSymbol возвращает логгер с полем symbol
func (l *Logger) WithSymbol(symbol string) *Logger {
	return l.With(zap.String("symbol", symbol))
}

// WithBot возвращает логгер с полем bot (имя записи бота)
func (l *Logger) WithBot(name string) *Logger {
	return l.With(zap.String("bot", name))
}

// Sugar возвращает SugaredLogger для printf-style логирования
func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// ============================================================
// Глобальные функции логирования
// ============================================================

// Debug логирует сообщение на уровне Debug через глобальный логгер
func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().Logger.Debug(msg, fields...)
}

// Info логирует сообщение на уровне Info через глобальный логгер
func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().Logger.Info(msg, fields...)
}

// Warn логирует сообщение на уровне Warn через глобальный логгер
func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().Logger.Warn(msg, fields...)
}

// Error логирует сообщение на уровне Error через глобальный логгер
func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().Logger.Error(msg, fields...)
}

// Fatal логирует сообщение и завершает процесс
func Fatal(msg string, fields ...zap.Field) {
	GetGlobalLogger().Logger.Fatal(msg, fields...)
}

// Debugf - printf-style Debug
func Debugf(template string, args ...interface{}) {
	GetGlobalLogger().sugar.Debugf(template, args...)
}

// Infof - printf-style Info
func Infof(template string, args ...interface{}) {
	GetGlobalLogger().sugar.Infof(template, args...)
}

// Warnf - printf-style Warn
func Warnf(template string, args ...interface{}) {
	GetGlobalLogger().sugar.Warnf(template, args...)
}

// Errorf - printf-style Error
func Errorf(template string, args ...interface{}) {
	GetGlobalLogger().sugar.Errorf(template, args...)
}

// Fatalf - printf-style Fatal
func Fatalf(template string, args ...interface{}) {
	GetGlobalLogger().sugar.Fatalf(template, args...)
}

// ============================================================
// Доменные конструкторы полей
// ============================================================

// Component - поле component (api, pionex, websocket, store)
func Component(name string) zap.Field {
	return zap.String("component", name)
}

// Endpoint - поле endpoint (upstream путь, например /api/v1/futures/positions)
func Endpoint(path string) zap.Field {
	return zap.String("endpoint", path)
}

// Route - поле route (локальный путь, например /api/futures/balance)
func Route(path string) zap.Field {
	return zap.String("route", path)
}

// Method - поле method (HTTP метод)
func Method(method string) zap.Field {
	return zap.String("method", method)
}

// Symbol - поле symbol (торговая пара)
func Symbol(symbol string) zap.Field {
	return zap.String("symbol", symbol)
}

// Bot - поле bot (имя записи бота)
func Bot(name string) zap.Field {
	return zap.String("bot", name)
}

// Status - поле status (HTTP статус код)
func Status(code int) zap.Field {
	return zap.Int("status", code)
}

// Latency - поле latency_ms
func Latency(ms float64) zap.Field {
	return zap.Float64("latency_ms", ms)
}

// RequestID - поле request_id
func RequestID(id string) zap.Field {
	return zap.String("request_id", id)
}

// ============================================================
// Переэкспорт стандартных конструкторов zap
// ============================================================

// String - переэкспорт zap.String
func String(key, value string) zap.Field { return zap.String(key, value) }

// Int - переэкспорт zap.Int
func Int(key string, value int) zap.Field { return zap.Int(key, value) }

// Int64 - переэкспорт zap.Int64
func Int64(key string, value int64) zap.Field { return zap.Int64(key, value) }

// Float64 - переэкспорт zap.Float64
func Float64(key string, value float64) zap.Field { return zap.Float64(key, value) }

// Bool - переэкспорт zap.Bool
func Bool(key string, value bool) zap.Field { return zap.Bool(key, value) }

// Err - переэкспорт zap.Error
func Err(err error) zap.Field { return zap.Error(err) }

// Any - переэкспорт zap.Any
func Any(key string, value interface{}) zap.Field { return zap.Any(key, value) }
