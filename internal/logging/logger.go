package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/wellness/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 10
	logFileMaxAgeDays = 30
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger and returns the closer of the log file, if any.
func Setup(params LoggerSetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Infoln("logging to stdout only")
		return pkg.NewCombinedWriter()
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}

	if params.LogToStdout {
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, rotating))
	} else {
		logrus.SetOutput(rotating)
	}
	logrus.Infof("logging to %s (stdout: %t)", fileName, params.LogToStdout)
	return rotating
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}
	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry hook added")
}

// GetLevel parses a level name, case insensitive. Unknown names fall back to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
