package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/gateway"
	chainstore "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/kv/chain"
	filestore "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/kv/file"
	passstore "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/kv/pass"
	tomlstore "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/kv/toml"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/render/dashboard"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/application"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/config"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

var errLoginRequired = errors.New("login required")

type app struct {
	cfg    config.Config
	shell  *application.Shell
	logger *slog.Logger

	renderDashboard func(application.DashboardSnapshot, dashboard.RenderOptions) (string, error)
	runDashboard    func(context.Context, *application.Shell, dashboard.RunOptions) error
	isTerminal      func(fd int) bool
	readPassword    func(fd int) ([]byte, error)
	now             func() time.Time

	redirectMu sync.Mutex
	redirectTo string
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New(), config.Options{})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	a := &app{
		cfg:             cfg,
		logger:          logger,
		renderDashboard: dashboard.Render,
		runDashboard:    dashboard.Run,
		isTerminal:      term.IsTerminal,
		readPassword:    term.ReadPassword,
		now:             time.Now,
	}

	client := &gateway.Client{
		BaseURL:        cfg.Gateway.BaseURL,
		HTTPClient:     &http.Client{},
		RequestTimeout: cfg.Gateway.Timeout,
		Logger:         logger,
	}

	a.shell = application.NewShell(application.ShellDeps{
		Auth:                   client,
		Profiles:               client,
		Activities:             client.Activities(),
		Recommendations:        client.Recommendations(),
		Store:                  store,
		Clock:                  ports.SystemClock{},
		Navigator:              application.NavigatorFunc(a.navigate),
		Logger:                 logger,
		SessionNamespace:       cfg.SessionNamespace,
		NotificationLifetime:   cfg.NotificationLifetime,
		ActivityPageSize:       cfg.ActivityPageSize,
		RecommendationPageSize: cfg.RecommendationPageSize,
	})
	client.Tokens = gateway.TokenFunc(a.shell.Session.Token)
	client.OnUnauthorized = a.shell.Unauthorized

	return a, nil
}

func newSessionStore(cfg config.Config) (ports.KeyValueStore, error) {
	entriesDir := filepath.Join(cfg.StorageDir, "session")

	switch cfg.SessionBackend {
	case config.BackendPass:
		return passstore.NewStore(), nil
	case config.BackendFile:
		return filestore.NewStore(entriesDir), nil
	case config.BackendTOML:
		return tomlstore.NewStore(cfg.TOMLPath)
	case config.BackendChain:
		return chainstore.NewPassFirstWithFileFallback(entriesDir), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

// navigate records redirects raised while a command runs, such as the
// login redirect after an expired session.
func (a *app) navigate(path string) {
	a.redirectMu.Lock()
	defer a.redirectMu.Unlock()
	a.redirectTo = path
}

func (a *app) takeRedirect() string {
	a.redirectMu.Lock()
	defer a.redirectMu.Unlock()
	path := a.redirectTo
	a.redirectTo = ""
	return path
}

func (a *app) stdinIsTerminal() bool {
	return a.isTerminal(int(os.Stdin.Fd()))
}

func (a *app) stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && a.isTerminal(int(f.Fd()))
}
