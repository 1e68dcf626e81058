package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/form"
	"github.com/dmfreyre/safeguard-client/internal/infra/config"
	context_ "github.com/dmfreyre/safeguard-client/internal/infra/context"
	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
	transport "github.com/dmfreyre/safeguard-client/internal/infra/transport/http"
	"github.com/dmfreyre/safeguard-client/internal/session"
)

const appName = "safeguard"

type Config struct {
	config.EnvConfig

	Log     logging.LoggerConfig       `envPrefix:"LOG_"`
	API     api.ClientConfig           `envPrefix:"API_"`
	HTTP    transport.HTTPClientConfig `envPrefix:"HTTP_"`
	Session session.SQLiteStoreConfig  `envPrefix:"SESSION_"`
}

func main() {
	var (
		cfg Config
		ctx = context.Background()

		configPrefix = strings.ToUpper(appName)
	)

	if err := config.Parse(ctx, &cfg, configPrefix); err != nil {
		panic(err)
	}

	logging.Configure(ctx, cfg.Log, appName)

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	if err := run(ctx, cfg, args); err != nil {
		fmt.Fprintln(os.Stderr, appName+": "+userMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, args []string) (err error) {
	log := logging.GetLogger("cmd.safeguard")

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "command failed", "command", args[0], "error", err)
		}
	}()

	store, err := session.SQLiteStoreFactory(cfg.Session)()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	// Stamp the signed-in user onto the context so every log line below
	// carries the session group.
	if user, ok, err := store.User(ctx); err == nil && ok {
		ctx = context_.WithUserID(ctx, user.ID)
	}

	return newApp(cfg, store).dispatch(ctx, args)
}

// userMessage maps an error to the line shown on stderr, mirroring the
// toast messages of the web client.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "You are not signed in. Run 'safeguard login' first."
	case errors.Is(err, domain.ErrSessionExpired):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, form.ErrFormInvalid):
		return "Some fields are invalid. Please try again."
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}

	return err.Error()
}
