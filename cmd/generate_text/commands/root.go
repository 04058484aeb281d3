// Package commands implements the CLI for generate_text.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/texcache/internal/app"
	"go.trai.ch/texcache/internal/build"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for generate_text.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	logJSON func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, files []string, opts app.RunOptions) error
	List(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "generate_text [flags] <filename> [<filename> ...]",
		Short: "Render TEX: annotations into cached images",
		Long: `generate_text scans the given files for "TEX:<latex>" string literals and
renders each one to <cache dir>/<sha1>.png with pdflatex and convert.
Images that already exist are not rendered again.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("config", "c", domain.DefaultConfigFile, "Path to the YAML configuration file")
	rootCmd.Flags().StringP("cache-dir", "d", "", "Cache directory (overrides the configuration file)")
	rootCmd.Flags().Bool("list", false, "List cached images instead of rendering (no filenames)")
	rootCmd.Flags().Bool("json", false, "Write log lines as JSON")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")
	if len(args) == 0 && !list {
		// Display command usage help without returning an error
		_ = cmd.Help()
		return nil
	}

	jsonMode, _ := cmd.Flags().GetBool("json")
	if jsonMode && c.logJSON != nil {
		c.logJSON(true)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	opts := app.RunOptions{
		ConfigPath:     configPath,
		ConfigExplicit: cmd.Flags().Changed("config"),
		CacheDir:       cacheDir,
	}

	if list {
		if len(args) > 0 {
			return zerr.With(domain.ErrListWithFiles, "files", strings.Join(args, " "))
		}
		return c.app.List(cmd.Context(), opts)
	}
	return c.app.Run(cmd.Context(), args, opts)
}

// OnJSON registers fn to be called when --json is given.
func (c *CLI) OnJSON(fn func(bool)) {
	c.logJSON = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
