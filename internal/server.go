package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/wellness/internal/auth"
	"github.com/2beens/wellness/internal/cache"
	"github.com/2beens/wellness/internal/config"
	"github.com/2beens/wellness/internal/dashboard"
	"github.com/2beens/wellness/internal/db"
	"github.com/2beens/wellness/internal/middleware"
	"github.com/2beens/wellness/internal/nutrition"
	"github.com/2beens/wellness/internal/nutrition/mealscan"
	"github.com/2beens/wellness/internal/photostore"
	"github.com/2beens/wellness/internal/profile"
	"github.com/2beens/wellness/internal/progress"
	"github.com/2beens/wellness/internal/skincare"
	"github.com/2beens/wellness/internal/telemetry/metrics"
	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/internal/workouts"
	"github.com/2beens/wellness/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	photoStore   *photostore.DiskStore
	mealAnalyzer mealscan.Analyzer
	cache        *cache.JSONCache

	redisClient    *redis.Client
	loginChecker   *auth.LoginChecker
	authService    *auth.Service
	sessionCleanup *cron.Cron

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	GeminiAPIKey            string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("wellness", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(auth.NewRepo(dbPool), auth.DefaultTTL, rdb)
	sessionCleanup, err := auth.StartSessionCleanup(ctx, authService, auth.DefaultCleanupSchedule, func(removed int) {
		metricsManager.CounterSessionsCleaned.Add(float64(removed))
	})
	if err != nil {
		return nil, err
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "wellness-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Minute,
	}

	mealAnalyzer, err := mealscan.NewAnalyzer(
		ctx,
		params.GeminiAPIKey,
		params.Config.GeminiModel,
		params.Config.MealAnalysisPerMin,
		tracedHttpClient,
	)
	if err != nil {
		return nil, fmt.Errorf("new meal analyzer: %w", err)
	}

	photoStore, err := photostore.NewDiskStore(params.Config.PhotosRootPath)
	if err != nil {
		return nil, fmt.Errorf("new photo store: %w", err)
	}

	return &Server{
		config:       params.Config,
		dbPool:       dbPool,
		photoStore:   photoStore,
		mealAnalyzer: mealAnalyzer,
		cache:        cache.NewJSONCache(params.Config.CacheSizeMB),
		versionInfo:  params.VersionInfo,

		redisClient:    rdb,
		authService:    authService,
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		sessionCleanup: sessionCleanup,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	loc := s.config.Location()

	authHandler := auth.NewHandler(s.authService, s.metricsManager)
	authHandler.SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter, "auth", s.config.LoginRateLimitAllowedPerMin, s.metricsManager,
	))

	profileService := profile.NewService(profile.NewRepo(s.dbPool))
	profile.NewHandler(profileService).SetupRoutes(r)

	workoutsService := workouts.NewService(
		workouts.NewRepo(s.dbPool),
		profileService,
		s.cache,
		s.metricsManager,
		loc,
	)
	workouts.NewHandler(workoutsService).SetupRoutes(r)

	nutritionService := nutrition.NewService(
		nutrition.NewRepo(s.dbPool),
		profileService,
		s.mealAnalyzer,
		s.photoStore,
		s.cache,
		s.metricsManager,
		loc,
	)
	nutrition.NewHandler(nutritionService).SetupRoutes(r, middleware.RateLimit(
		reqRateLimiter, "meal-analysis", s.config.MealAnalysisPerMin, s.metricsManager,
	))

	skincareService := skincare.NewService(
		skincare.NewRepo(s.dbPool),
		profileService,
		s.metricsManager,
		loc,
	)
	skincare.NewHandler(skincareService).SetupRoutes(r)

	progressService := progress.NewService(
		progress.NewRepo(s.dbPool),
		workoutsService,
		s.photoStore,
		s.metricsManager,
		loc,
	)
	progress.NewHandler(progressService).SetupRoutes(r)

	dashboardService := dashboard.NewService(
		profileService,
		workoutsService,
		skincareService,
		nutritionService,
		loc,
	)
	dashboard.NewHandler(dashboardService).SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.sessionCleanup != nil {
		s.sessionCleanup.Stop()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if s.photoStore != nil {
		if err := s.photoStore.Close(); err != nil {
			log.Errorf("failed to close photo store: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
