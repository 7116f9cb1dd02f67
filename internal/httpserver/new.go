package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/config"
	"calendar-assistant/internal/calendar/repository"
	"calendar-assistant/internal/session"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/deepseek"
	pkgLog "calendar-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	cfg      *config.Config
	store    repository.Store // already range-compensated
	sessions *session.Store
	llm      deepseek.IDeepSeek
	dateMath *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config
	Store     repository.Store
	Sessions  *session.Store
	LLM       deepseek.IDeepSeek
	DateMath  *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		store:       cfg.Store,
		sessions:    cfg.Sessions,
		llm:         cfg.LLM,
		dateMath:    cfg.DateMath,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("calendar store is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.llm == nil {
		return errors.New("language model client is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
