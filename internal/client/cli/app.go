package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Shahzad-Ali-44/TaskMate/internal/client/client"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/config"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/services"
	"github.com/Shahzad-Ali-44/TaskMate/internal/client/session"
)

type App struct {
	config *config.Config
	api    client.Client
	auth   services.AuthService
	tasks  *services.TaskController
	closer io.Closer

	reader *bufio.Reader
	out    io.Writer
	// listed holds task ids in the order of the last printed list.
	listed []string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	auth := services.NewAuthService(api, session.NewStore(repos.Metadata))

	return newApp(c, api, auth, repos, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, auth services.AuthService, closer io.Closer, r *bufio.Reader, w io.Writer) *App {
	return &App{
		config: c,
		api:    api,
		auth:   auth,
		tasks:  services.NewTaskController(api),
		closer: closer,
		reader: r,
		out:    w,
	}
}

// Run restores the saved session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.closer != nil {
			_ = a.closer.Close()
		}
	}()

	printlnFn("Welcome to TaskMate CLI (type 'help' for commands)")
	a.restore(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) restore(ctx context.Context) {
	sess, err := a.auth.Restore(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, session kept: %s", err.Error())
			return
		}
		log.Printf("Could not restore session: %s", err.Error())
		return
	}
	if sess == nil {
		return
	}

	printlnFn(fmt.Sprintf("Welcome back, %s", displayName(sess)))
	if err := a.tasks.Load(ctx); err != nil {
		log.Printf("Could not load tasks: %s", err.Error())
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) getStatus() string {
	sess := a.auth.Current()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", sess.User.Email)
}

func (a *App) Health(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s [%s] %s", h.Message, h.Environment, h.Timestamp))
	return nil
}

func displayName(sess *session.Session) string {
	if sess.User.Name != "" {
		return sess.User.Name
	}
	return sess.User.Email
}
