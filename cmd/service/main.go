package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/wellness/internal"
	"github.com/2beens/wellness/internal/config"
	"github.com/2beens/wellness/internal/logging"
	"github.com/2beens/wellness/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	dotEnvPath := flag.String("dotenv", ".env", "optional .env file with secrets")
	flag.Parse()

	if err := godotenv.Load(*dotEnvPath); err != nil {
		fmt.Printf("no .env file loaded from %s: %s\n", *dotEnvPath, err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "wellness-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("using timezone: %s", cfg.Location())

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		log.Warnln("gemini API key not set, meal analysis will return the development response. use GEMINI_API_KEY")
	}

	dbPassword := os.Getenv("WELLNESS_DB_PASSWORD")
	if dbPassword == "" {
		log.Errorf("db password not set. use WELLNESS_DB_PASSWORD")
	}

	redisPassword := os.Getenv("WELLNESS_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use WELLNESS_REDIS_PASS")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	created, err := pkg.EnsureDir(cfg.PhotosRootPath, 0o750)
	if err != nil {
		log.Fatalf("photos root dir: %s", err)
	}
	if created {
		log.Infof("created photos root dir %s", cfg.PhotosRootPath)
	}
	log.Printf("photos root dir: %s", cfg.PhotosRootPath)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			DBPassword:              dbPassword,
			RedisPassword:           redisPassword,
			GeminiAPIKey:            geminiAPIKey,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()

	if err := logCloser.Close(); err != nil {
		fmt.Printf("close log output: %s\n", err)
	}
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
