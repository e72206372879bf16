package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/wellness/internal/catalog"
	"github.com/2beens/wellness/internal/config"
	"github.com/2beens/wellness/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	env         string
	configPath  string
	catalogPath string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Prepare the wellness database",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Debugf("no .env file loaded: %s", err)
		}
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			if err := db.ApplySchema(ctx, pool); err != nil {
				return err
			}
			log.Infoln("schema applied")
			return nil
		})
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Upsert exercises, workouts and foods from a YAML catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}
		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			return seedCatalog(ctx, pool, c)
		})
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Apply the schema, then seed the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}
		return withPool(cmd.Context(), func(ctx context.Context, pool *pgxpool.Pool) error {
			if err := db.ApplySchema(ctx, pool); err != nil {
				return err
			}
			return seedCatalog(ctx, pool, c)
		})
	},
}

func seedCatalog(ctx context.Context, pool *pgxpool.Pool, c *catalog.Catalog) error {
	res, err := catalog.NewSeeder(pool).Seed(ctx, c)
	if err != nil {
		return err
	}
	log.Infof("catalog seeded: %d exercises, %d workouts, %d foods", res.Exercises, res.Workouts, res.Foods)
	return nil
}

func withPool(ctx context.Context, fn func(ctx context.Context, pool *pgxpool.Pool) error) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("WELLNESS_DB_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}
	return fn(ctx, pool)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	catalogCmd.Flags().StringVar(&catalogPath, "file", "", "catalog YAML file, the bundled catalog when empty")
	allCmd.Flags().StringVar(&catalogPath, "file", "", "catalog YAML file, the bundled catalog when empty")
	rootCmd.AddCommand(schemaCmd, catalogCmd, allCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("seed: %s", err)
		stop()
		os.Exit(1)
	}
}
