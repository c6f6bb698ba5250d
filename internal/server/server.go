package server

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"portfolio-server/internal/api/handlers"
	"portfolio-server/internal/api/middleware"
	"portfolio-server/internal/config"
	"portfolio-server/internal/intake"
	"portfolio-server/internal/logging"
	"portfolio-server/internal/observability"
	"portfolio-server/internal/origin"
	"portfolio-server/internal/ratelimit"
	"portfolio-server/internal/sink"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config

	firestoreSink *sink.FirestoreSink
}

// NewServer wires the intake pipeline and its HTTP surface from configuration.
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	// Always add recovery middleware for panic handling
	router.Use(gin.Recovery())

	s := &Server{
		router: router,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	logger := logging.GetLogger()

	guard := origin.NewGuard(s.cfg.AllowedOrigins)
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), s.cfg.RateLimitMax, s.cfg.RateLimitWindow)

	// Document sink: optional, absence disables the durable write.
	var document intake.DocumentSink
	s.firestoreSink = sink.NewFirestoreSink(sink.FirestoreConfig{
		ProjectID:       s.cfg.FirebaseProjectID,
		CredentialsJSON: s.cfg.FirebaseServiceAccountKey,
		CredentialsFile: s.cfg.FirebaseCredentialsFile,
	})
	if s.firestoreSink != nil {
		document = s.firestoreSink
		logger.Info("document sink enabled: %s", document.Name())
	} else {
		logger.Warn("no Firebase credentials configured, document sink disabled")
	}

	// Notification sink: Telegram when fully configured, else Formspree.
	var notifier intake.NotificationSink
	if tg := sink.NewTelegramSink(s.cfg.TelegramBotToken, s.cfg.TelegramChatID); tg != nil {
		notifier = tg
	} else if fs := sink.NewFormspreeSink(s.cfg.FormspreeID); fs != nil {
		notifier = fs
	}
	if notifier != nil {
		logger.Info("notification sink enabled: %s", notifier.Name())
	} else {
		logger.Warn("no notification sink configured")
	}

	pipeline := intake.NewPipeline(guard, limiter, document, notifier)

	contactHandler := handlers.NewContactHandler(pipeline)
	healthHandler := handlers.NewHealthHandler(sinkName(document), sinkName(notifier))

	// Global middleware. CORS answers preflights before routing; the global
	// token bucket sits in front of the pipeline's per-client window.
	if s.cfg.OTLPEndpoint != "" {
		s.router.Use(otelgin.Middleware(observability.ServiceName))
	}
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(guard))
	s.router.Use(middleware.PreserveRequestBody())
	s.router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
		RPS:   s.cfg.GlobalRPS,
		Burst: s.cfg.GlobalBurst,
	}))
	s.router.Use(middleware.RequestLogger())

	s.router.GET("/healthz", healthHandler.Check)

	public := s.router.Group("/api/v1")
	{
		public.POST("/contact", contactHandler.Submit)
	}
}

func sinkName(s interface{ Name() string }) string {
	if s == nil {
		return ""
	}
	return s.Name()
}

// Start starts the server and blocks until it exits.
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}

// Close releases sink clients.
func (s *Server) Close() error {
	if s.firestoreSink != nil {
		return s.firestoreSink.Close()
	}
	return nil
}
