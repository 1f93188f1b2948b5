package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hrverify/internal/client/authflow"
	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/config"
	"github.com/dmitrijs2005/hrverify/internal/client/controllers"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
	"github.com/dmitrijs2005/hrverify/internal/client/session"
	"github.com/dmitrijs2005/hrverify/internal/client/storage"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

type App struct {
	cfg   *config.Config
	log   logging.Logger
	db    *sql.DB
	store session.Store
	api   *client.Client

	flow      *authflow.Flow
	candidate *controllers.Candidate
	company   *controllers.Company
	admin     *controllers.Admin
	account   *controllers.Account

	// contactDraft holds the last contact whose create failed; the next
	// add offers it as defaults.
	contactDraft models.ContactInput

	route  routes.Route
	reader *bufio.Reader
	out    io.Writer

	unsubscribe func()
}

// NewApp opens the session database and wires the client and controllers.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.SessionDB)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", cfg.SessionDB, "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	api := client.New(client.Options{BaseURL: cfg.BaseURL, Timeout: cfg.RequestTimeout}, store, log)

	a := newApp(cfg, log, store, api, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(cfg *config.Config, log logging.Logger, store session.Store, api *client.Client, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	a := &App{
		cfg:       cfg,
		log:       log,
		store:     store,
		api:       api,
		candidate: controllers.NewCandidate(api, log),
		company:   controllers.NewCompany(api, log),
		admin:     controllers.NewAdmin(api, log),
		account:   controllers.NewAccount(api, log),
		route:     routes.Landing,
		reader:    bufio.NewReader(in),
		out:       out,
	}
	a.unsubscribe = api.Subscribe(a.onClientEvent)
	return a
}

func (a *App) flowOptions() authflow.Options {
	return authflow.Options{AdminSecurityCode: a.cfg.AdminSecurityCode, DemoAdminOTP: a.cfg.DemoAdminOTP}
}

// onClientEvent runs synchronously inside the failing request. It only
// switches the route; the command that issued the request reports its own
// error afterwards. On the login screen a 401 is a rejected credential and
// the running flow reports it.
func (a *App) onClientEvent(e client.Event) {
	if e.Kind != client.EventUnauthorized {
		return
	}
	a.log.Info(context.Background(), "session rejected by backend", "path", e.Path)
	if a.route == routes.Login {
		return
	}

	msg := "Your session has expired. Please log in again."
	if a.route == routes.Signup {
		msg = "Not authorized. Please log in."
	}
	a.route = routes.Login
	a.flow = authflow.NewLogin(a.api, a.store, a.flowOptions(), a.log)
	a.warn(msg)
}

// Run starts on the dashboard of a stored session, or on the landing page,
// and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintf(a.out, "Welcome to HRVerify (backend %s, type 'help' for commands)\n", a.api.BaseURL())

	start := routes.Landing
	if s, ok := a.session(ctx); ok {
		start = routes.Dashboard(s.Role)
	}
	a.navigate(ctx, start)

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(context.Background(), "error closing session database", "error", err)
		}
		a.db = nil
	}
}

func (a *App) session(ctx context.Context) (models.Session, bool) {
	s, ok, err := a.store.Get(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session", "error", err)
		return models.Session{}, false
	}
	return s, ok
}
