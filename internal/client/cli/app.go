// Package cli is the interactive front end: a REPL over the session manager
// and the notes client. It owns no session logic of its own; it calls the
// core components and reacts to published session state.
package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/config"
	"github.com/dmitrijs2005/noteskeeper/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/noteskeeper/internal/client/session"
	"github.com/dmitrijs2005/noteskeeper/internal/client/storage"
	"github.com/dmitrijs2005/noteskeeper/internal/cryptox"
	"github.com/dmitrijs2005/noteskeeper/internal/filex"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// storageSalt pins the argon2 derivation so the same secret file always
// yields the same sealing key.
var storageSalt = []byte("noteskeeper/tokens")

// viewMode tracks which listing the pagination controls currently step
// through.
type viewMode int

const (
	viewList viewMode = iota
	viewSearch
	viewFilter
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager
	notes   *api.NotesClient

	reader *bufio.Reader
	out    io.Writer

	// pagination state for the active listing
	view        viewMode
	currentPage int
	totalPages  int
	searchQuery string
	filterTitle string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	secret, err := filex.LoadOrCreateSecret(cfg.SecretPath)
	if err != nil {
		return nil, err
	}
	key := cryptox.DeriveStorageKey(secret, storageSalt)

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := tokens.NewSQLiteRepository(db, key)

	apiClient := api.NewClient(cfg.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithLogger(log),
	)

	sess := session.NewManager(apiClient, repo, log)
	if err := sess.Bootstrap(ctx); err != nil {
		return nil, err
	}

	app := &App{
		config:      cfg,
		log:         log,
		session:     sess,
		notes:       api.NewNotesClient(apiClient, sess),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		currentPage: 1,
		totalPages:  1,
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) canPrev() bool { return a.currentPage > 1 }
func (a *App) canNext() bool { return a.currentPage < a.totalPages }
