package cli

import (
	"context"
	"io"
	"net/http"

	"github.com/markis/lai/internal/args"
	"github.com/markis/lai/internal/client"
	"github.com/markis/lai/internal/config"
	"github.com/markis/lai/internal/input"
	"github.com/markis/lai/internal/prompt"
	"github.com/markis/lai/internal/render"
	"github.com/markis/lai/internal/term"
	"github.com/spf13/cobra"
)

const usageText = `Usage: lai -p <prompt>
       command | lai -p <prompt>

Options:
  -p <prompt>    User prompt to include with the piped/inline data
  -h             Show help
`

// Env is everything the command touches outside of its arguments.
type Env struct {
	Stdin          io.Reader
	StdinTerminal  term.Terminal
	StdoutTerminal term.Terminal
	Stdout         io.Writer
	Stderr         io.Writer
	LookupEnv      config.LookupFunc

	// Color enables coloured diagnostics on Stderr.
	Color bool

	Endpoint   string
	HTTPClient *http.Client
}

// NewRootCommand builds the lai command for argv. argv is handed straight
// to args.Parse and never reaches cobra's command lookup, so tokens cobra
// reserves (such as __complete) are treated like any other option.
func NewRootCommand(env Env, cfg *config.Config, argv []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "lai -p <prompt>",
		Short:              "Ask a local chat-completion model about piped input",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, argv, env, cfg)
		},
	}
	cmd.SetArgs([]string{})
	cmd.SetUsageTemplate(usageText)
	cmd.SetIn(env.Stdin)
	// Usage and help go to stderr; stdout carries only the reply.
	cmd.SetOut(env.Stderr)
	cmd.SetErr(env.Stderr)
	return cmd
}

func run(cmd *cobra.Command, argv []string, env Env, cfg *config.Config) error {
	a, err := args.Parse(argv)
	if err != nil {
		return err
	}
	if a.HelpRequested {
		return cmd.Usage()
	}

	piped, err := input.Read(env.Stdin, env.StdinTerminal)
	if err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	renderer, err := newRenderer(env, cfg)
	if err != nil {
		return err
	}

	req := client.NewRequest(cfg.Model, prompt.Compose(a.Prompt, piped))
	reply, err := client.New(env.Endpoint, env.HTTPClient).Complete(cmd.Context(), req)
	if err != nil {
		return err
	}

	return renderer.Print(reply)
}

func newRenderer(env Env, cfg *config.Config) (*render.Renderer, error) {
	mode, err := cfg.RenderMode()
	if err != nil {
		return nil, err
	}
	if mode == config.RenderMarkdown && env.StdoutTerminal != nil && env.StdoutTerminal.IsInteractive() {
		return render.NewMarkdown(env.Stdout)
	}
	return render.NewPlain(env.Stdout), nil
}

// Execute runs lai with argv (program name excluded) and returns the
// process exit code.
func Execute(ctx context.Context, argv []string, env Env) int {
	if env.Endpoint == "" {
		env.Endpoint = client.DefaultEndpoint
	}

	cfg, err := config.Load(env.LookupEnv)
	if err != nil {
		report(env, nil, err)
		return 1
	}

	cmd := NewRootCommand(env, cfg, argv)
	if err := cmd.ExecuteContext(ctx); err != nil {
		report(env, cmd, err)
		return 1
	}
	return 0
}
