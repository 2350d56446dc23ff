package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/android-4dsoft/yettel/internal/catalog"
	"github.com/android-4dsoft/yettel/internal/region"
	"github.com/android-4dsoft/yettel/internal/service"
	"github.com/android-4dsoft/yettel/internal/session"
	"github.com/android-4dsoft/yettel/internal/upstream"
)

// app holds the dependencies shared by every subcommand.
type app struct {
	upstreamURL string
	timeout     time.Duration
	verbose     bool

	svc *service.VignetteService
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Output goes to the command's configured
// writers, so callers may redirect it with SetOut and SetErr.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "vignettectl",
		Short:        "Browse, price and buy highway vignettes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var logOut io.Writer = io.Discard
			if a.verbose {
				logOut = cmd.ErrOrStderr()
			}
			logger := slog.New(slog.NewTextHandler(logOut, nil))

			graph := region.Hungary()
			client := upstream.NewClient(a.upstreamURL, nil, a.timeout, logger)
			a.svc = service.NewVignetteService(
				session.NewRegistry(graph),
				graph,
				catalog.NewStore(client),
				client,
				nil,
				logger,
			)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.upstreamURL, "upstream", envOr("UPSTREAM_BASE_URL", "http://127.0.0.1:8080"), "upstream API base URL")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "per-request upstream timeout")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log upstream calls to stderr")

	root.AddCommand(catalogCmd(a), vehicleCmd(a), regionsCmd(a), quoteCmd(a), buyCmd(a))
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
