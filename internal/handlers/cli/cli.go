package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/ad402/payverify/internal/confirmwatch"
	"github.com/ad402/payverify/internal/payverify"

	"github.com/urfave/cli/v3"
)

// HTTPServer is the API server run by the serve command. *http.Server
// satisfies it.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Runtime holds what the serve command runs.
type Runtime struct {
	Server  HTTPServer
	Watcher confirmwatch.Service

	// Close releases the connections opened to build the runtime. Optional.
	Close func() error
}

// RuntimeFactory builds the serve runtime. Only the serve command calls it,
// so the other commands run without storage or messaging.
type RuntimeFactory func(ctx context.Context) (Runtime, error)

// Run initializes and executes the payverify CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Serves the HTTP API and runs the confirmation watcher.
//   - `verify`: Verifies a single payment against the chain.
//   - `confirmations`: Reports the confirmation depth of a transaction.
//   - `networks`: Lists the supported networks.
func Run(ctx context.Context, verifier payverify.Service, newRuntime RuntimeFactory) error {
	return newApp(verifier, newRuntime).Run(ctx, os.Args)
}

func newApp(verifier payverify.Service, newRuntime RuntimeFactory) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "payverify",
		Description:           "Verifies on-chain advertising payments and tracks their confirmations.",
		Usage:                 "payverify [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(newRuntime),
			verifyCommand(verifier),
			confirmationsCommand(verifier),
			networksCommand(verifier),
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
