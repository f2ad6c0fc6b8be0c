package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/config"
	"github.com/dmitrijs2005/guestbook/internal/flagx"
	"github.com/dmitrijs2005/guestbook/internal/guestbook"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/repositories/repomanager"
	"github.com/dmitrijs2005/guestbook/internal/services"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	entryService *services.EntryService
	out          io.Writer
}

// NewApp connects to storage, applies migrations and wires the services.
// Command output goes to out, logs go to logOut.
func NewApp(ctx context.Context, c *config.Config, out, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logger := logging.NewJSONLogger(logOut, level)

	m, err := repomanager.New(c.Driver)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, m, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	es := services.NewEntryService(db, m, guestbook.NewFactory(guestbook.SystemClock), c, logger)

	return &App{
		config:       c,
		logger:       logger.With("module", "cli"),
		db:           db,
		repomanager:  m,
		entryService: es,
		out:          out,
	}, nil
}

// Close releases the database connection pool.
func (a *App) Close() error {
	return a.db.Close()
}

// initSignalHandler cancels the command's context on SIGINT, SIGTERM or
// SIGQUIT until ctx is done.
func (a *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run executes the command found in args (typically os.Args[1:]). Config
// flags are stripped before the command parses its own flags.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	a.initSignalHandler(ctx, cancelFunc)

	rest := flagx.RemoveArgs(args, config.OwnedFlags())
	if len(rest) == 0 {
		a.usage()
		return fmt.Errorf("%w: none given", common.ErrUnknownCommand)
	}

	cmd, cmdArgs := rest[0], rest[1:]
	a.logger.Debug(ctx, "running command", "command", cmd)

	var err error
	switch cmd {
	case "migrate":
		err = a.migrate(ctx)
	case "sign":
		err = a.sign(ctx, cmdArgs)
	case "import":
		err = a.importEntries(ctx, cmdArgs)
	case "list":
		err = a.list(ctx, cmdArgs)
	case "show":
		err = a.show(ctx, cmdArgs)
	case "delete":
		err = a.delete(ctx, cmdArgs)
	case "version":
		a.version()
	case "help", "-h", "-help":
		a.usage()
	default:
		a.usage()
		return fmt.Errorf("%w: %q", common.ErrUnknownCommand, cmd)
	}

	if err != nil && !errors.Is(err, common.ErrInvalidArgument) && !errors.Is(err, common.ErrorNotFound) {
		a.logger.Error(ctx, "command failed", "command", cmd, "error", err)
	}
	return err
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: guestbook [-c config.json] [-k driver] [-d dsn] [-p page-size] [-l level] [-t timeout] <command> [flags]")
	fmt.Fprintln(a.out, "Commands: migrate, sign, import, list, show, delete, version, help")
}
