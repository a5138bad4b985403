// Package app wires the parsing collaborator, the engine and the display
// collaborator into a single run.
package app

import (
	"io"
	"log/slog"

	"github.com/amirasaad/payengine/pkg/config"
	"github.com/amirasaad/payengine/pkg/engine"
	"github.com/amirasaad/payengine/pkg/ledger"
	"github.com/amirasaad/payengine/pkg/parser"
	"github.com/amirasaad/payengine/pkg/render"
	"github.com/amirasaad/payengine/pkg/repository"
)

// Deps contains the dependencies the App needs.
type Deps struct {
	Accounts repository.AccountRepository
	History  *ledger.History
	Logger   *slog.Logger
}

// App holds the assembled components for one processing run.
type App struct {
	Deps   *Deps
	Config *config.App
	Engine *engine.Engine
	Parser *parser.Parser
}

// New assembles an App from its dependencies, filling in in-memory containers
// and the default logger where none are given.
func New(deps *Deps, cfg *config.App) *App {
	if deps == nil {
		deps = &Deps{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Accounts == nil {
		deps.Accounts = repository.NewMemoryAccountRepository()
	}
	if deps.History == nil {
		deps.History = ledger.NewHistory()
	}
	return &App{
		Deps:   deps,
		Config: cfg,
		Engine: engine.New(deps.Accounts, deps.History, deps.Logger),
		Parser: parser.New(deps.Logger),
	}
}

// Run parses the instruction stream at inputPath, replays it through the
// engine and writes the final account snapshot to out. Only boundary failures
// (unreadable input, unwritable output) are returned; per-instruction problems
// are handled inside the fold.
func (a *App) Run(inputPath string, out io.Writer) error {
	instructions, err := a.Parser.ParseFile(inputPath)
	if err != nil {
		return err
	}
	a.Deps.Logger.Info("processing instructions", "count", len(instructions))

	a.Engine.Process(instructions)

	return render.WriteAccounts(out, a.Engine.Accounts().All())
}
