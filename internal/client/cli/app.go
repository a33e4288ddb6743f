package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/madil51/chunk-client/internal/client/api"
	"github.com/madil51/chunk-client/internal/client/config"
	"github.com/madil51/chunk-client/internal/client/guard"
	"github.com/madil51/chunk-client/internal/client/realtime"
	"github.com/madil51/chunk-client/internal/client/services"
	"github.com/madil51/chunk-client/internal/client/session"
	"github.com/madil51/chunk-client/internal/client/storage"
	"github.com/madil51/chunk-client/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive Chunk terminal client. It owns the session store,
// the realtime bridge, the domain services and the current "route" the user
// is on, which the guard controls.
type App struct {
	config *config.Config
	log    logging.Logger

	store  *session.Store
	bridge *realtime.Bridge
	guard  *guard.Guard

	auth          services.AuthService
	customer      services.CustomerService
	driver        services.DriverService
	chat          services.ChatService
	notifications services.NotificationService

	reader *bufio.Reader
	out    io.Writer

	route string
}

// NewApp wires the whole client together: local database, session store,
// API client, realtime bridge, services and guard.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	store := session.NewStore(db, log)
	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.HTTPTimeout, store.Token, log)
	bridge := realtime.NewBridge(cfg.SocketURL, store, log)

	a := &App{
		config:        cfg,
		log:           log,
		store:         store,
		bridge:        bridge,
		auth:          services.NewAuthService(apiClient, store, log),
		customer:      services.NewCustomerService(apiClient, log),
		driver:        services.NewDriverService(apiClient, bridge, log),
		chat:          services.NewChatService(bridge, log),
		notifications: services.NewNotificationService(apiClient),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		route:         "/home",
	}
	a.guard = guard.New(store, a, a)
	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.bridge.Close()
	a.Root(ctx)
}

// NavigateTo implements guard.Navigator: the CLI's notion of navigation is
// switching the active view.
func (a *App) NavigateTo(path string) {
	if a.route != path {
		a.route = path
		fmt.Fprintf(a.out, "-> %s\n", path)
	}
}

// Notify implements guard.Notifier.
func (a *App) Notify(message string) {
	fmt.Fprintf(a.out, "! %s\n", message)
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated()
}

// goTo routes a navigation attempt through the guard. Unprotected paths
// are entered directly.
func (a *App) goTo(path string) {
	route, protected := guard.Lookup(path)
	if !protected {
		a.NavigateTo(path)
		return
	}
	if a.guard.CanActivate(route) {
		a.NavigateTo(path)
	}
}
