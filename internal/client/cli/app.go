package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rewearapp/rewear/internal/client/api"
	"github.com/rewearapp/rewear/internal/client/authstate"
	"github.com/rewearapp/rewear/internal/client/catalog"
	"github.com/rewearapp/rewear/internal/client/config"
	"github.com/rewearapp/rewear/internal/client/guard"
	"github.com/rewearapp/rewear/internal/client/services"
	"github.com/rewearapp/rewear/internal/client/session"
	"github.com/rewearapp/rewear/internal/logging"
)

// Mode reflects the last observed reachability of the platform API.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the client subsystems together and hosts the REPL command
// handlers.
type App struct {
	config *config.Config
	log    logging.Logger

	auth  services.AuthService
	admin services.AdminService
	state *authstate.Manager
	gate  *guard.Gate
	items *catalog.Catalog

	// mode is written by the health watcher goroutine and read by the
	// REPL for every prompt; modeMu guards it.
	modeMu sync.Mutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer

	closeDB func() error
}

// NewApp builds a fully wired App: session database, REST transport,
// services, auth state, and admin gate.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	sessions := session.NewSQLiteStore(db)
	client := api.NewRESTClient(c.APIBaseURL, sessions, log)

	auth := services.NewAuthService(client, sessions, log)
	admin := services.NewAdminService(client, sessions, log)
	state := authstate.NewManager(auth, log)
	gate := guard.NewGate(state, admin, log)

	return &App{
		config:  c,
		log:     log,
		auth:    auth,
		admin:   admin,
		state:   state,
		gate:    gate,
		items:   catalog.Default(),
		mode:    ModeOffline,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closeDB: db.Close,
	}, nil
}

// Run resolves the persisted session, starts the health watcher, and
// enters the REPL until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeDB != nil {
			_ = a.closeDB()
		}
	}()

	a.state.Resolve(ctx)
	if u := a.state.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartHealthWatcher(watchCtx, a.config.HealthCheckInterval)

	fmt.Fprintln(a.out, "Welcome to ReWear CLI (type 'help' for commands)")
	_ = a.Featured(ctx)
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.state.CurrentUser() != nil
}

func (a *App) status() string {
	s := ""
	if u := a.state.CurrentUser(); u != nil {
		s = u.Email + " "
	}
	s += string(a.CurrentMode())
	return "(" + s + ")"
}

// CurrentMode reports the last observed reachability of the platform
// API.
func (a *App) CurrentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartHealthWatcher polls the platform /health endpoint on the given
// interval and flips the displayed connectivity mode accordingly.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			_, err := a.auth.CheckHealth(checkCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
