package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/reelcli/reel/internal/api"
	"github.com/reelcli/reel/internal/session"
	"github.com/reelcli/reel/internal/shared"
	"github.com/reelcli/reel/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	client *api.Client
	store  session.Store
	sess   *session.Session
	logger *log.Logger
	output io.Writer
	engine tasks.Engine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Client *api.Client
	Store  session.Store
	Cache  tasks.MovieCacher
	Logger *log.Logger
	Output io.Writer
	Engine tasks.Engine
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		opts.Client = api.NewClient(opts.Config.API.BaseURL, nil)
		opts.Client.Limit(opts.Config.API.RequestsPerSecond)
	}
	if opts.Engine == nil {
		opts.Engine = tasks.NewCatalogEngine(opts.Client, opts.Cache)
	}

	return &Runner{
		config: opts.Config,
		client: opts.Client,
		store:  opts.Store,
		logger: opts.Logger,
		output: opts.Output,
		engine: opts.Engine,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		authCommand, moviesCommand, actorsCommand, watchlistCommand, ratingsCommand, reviewsCommand, homeCommand, setupCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadSession restores and revalidates the stored session once per invocation.
func (r *Runner) loadSession(ctx context.Context) *session.Session {
	if r.sess != nil {
		return r.sess
	}
	if r.store == nil {
		return nil
	}
	r.sess = session.Bootstrap(ctx, r.store, r.client, r.logger)
	return r.sess
}

// requireSession returns the current session or an error directing the user to log in.
func (r *Runner) requireSession(ctx context.Context) (*session.Session, error) {
	sess := r.loadSession(ctx)
	if sess == nil || !sess.Authenticated() {
		return nil, fmt.Errorf("%w: run 'reel auth login' first", shared.ErrNotAuthenticated)
	}
	return sess, nil
}

// apiErr normalizes API failures. A 401 response invalidates the stored
// session so the next invocation starts signed out.
func (r *Runner) apiErr(err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		if r.store != nil {
			if cerr := r.store.Clear(); cerr != nil {
				r.logger.Warn("failed to clear session", "error", cerr)
			}
		}
		r.sess = nil
		return fmt.Errorf("%w: %v", shared.ErrSessionExpired, err)
	}
	return err
}

// drainProgress logs progress updates from a background operation.
func (r *Runner) drainProgress(progress <-chan tasks.ProgressUpdate, done chan<- struct{}) {
	for update := range progress {
		r.logger.Info(update.Message, "phase", update.Phase.String(), "step", update.Step, "total", update.Total)
	}
	close(done)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
