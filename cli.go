package templatize

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	Path        bool
	Contents    bool
	DryRun      bool
	Interactive bool
	Verbose     bool
	Quiet       bool
	Completion  string
}

var cliOpts = &cliOptions{}

var rootCmd = &cobra.Command{
	Use:   "templatize",
	Short: "Convert an existing project into a reusable template.",
	Long: `Convert an existing project into a reusable template by rewriting tokens
in file contents, file names, and directory names into placeholder syntax.

Example: templatize shapes example-name '{{ project-name }}' -p -c`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cliOpts.Completion != "" {
			return handleCompletion(cmd)
		}
		return cmd.Help()
	},
}

var exactCmd = &cobra.Command{
	Use:   "exact TOKEN REPLACEMENT [TARGET]",
	Short: "Replace an exact token with exact placeholder syntax",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplace(args, func(token, replacement string) (Replacer, error) {
			return NewExactReplacer(token, replacement), nil
		})
	},
}

var shapesCmd = &cobra.Command{
	Use:   "shapes TOKEN REPLACEMENT [TARGET]",
	Short: "Replace every casing variant of a compound token",
	Long: `Replace every recognized casing variant of a compound token (camelCase,
PascalCase, kebab-case, snake_case, Train-Case, SCREAMING_SNAKE_CASE,
COBOL-CASE) with the matching casing of the replacement.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplace(args, func(token, replacement string) (Replacer, error) {
			return NewShapeReplacer(token, replacement)
		})
	},
}

var escapeCmd = &cobra.Command{
	Use:   "escape [TARGET]",
	Short: "Escape pre-existing placeholder syntax in file contents",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := resolveTarget(args, 0)
		if err != nil {
			return err
		}

		replacer, err := NewEscapeReplacer()
		if err != nil {
			return err
		}

		if cliOpts.DryRun {
			slog.Warn("dry run mode, no changes will be made")
		}

		result, err := Process(target, replacer, Options{Contents: true, DryRun: cliOpts.DryRun}, chooseApprover())
		if err != nil {
			return err
		}
		fmt.Print(FormatResult(result))
		return nil
	},
}

func runReplace(args []string, build func(token, replacement string) (Replacer, error)) error {
	target, err := resolveTarget(args, 2)
	if err != nil {
		return err
	}

	replacer, err := build(args[0], args[1])
	if err != nil {
		return err
	}

	path, contents := cliOpts.Path, cliOpts.Contents
	if !path && !contents {
		if path, err = confirm("Enable path templating (-p)?"); err != nil {
			return err
		}
		if contents, err = confirm("Enable contents templating (-c)?"); err != nil {
			return err
		}
		if !path && !contents {
			return fmt.Errorf("at least one of --path (-p) or --contents (-c) must be enabled")
		}
	}

	if cliOpts.DryRun {
		slog.Warn("dry run mode, no changes will be made")
	}

	opts := Options{Paths: path, Contents: contents, DryRun: cliOpts.DryRun}
	result, err := Process(target, replacer, opts, chooseApprover())
	if err != nil {
		return err
	}
	fmt.Print(FormatResult(result))
	return nil
}

func resolveTarget(args []string, index int) (string, error) {
	if len(args) > index {
		return args[index], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get current working directory: %w", err)
	}
	return wd, nil
}

func chooseApprover() Approver {
	if cliOpts.Interactive {
		return NewInteractiveApprover()
	}
	return ApproveAll()
}

func setupLogging() {
	level := slog.LevelInfo
	switch {
	case cliOpts.Quiet:
		level = slog.LevelError
	case cliOpts.Verbose:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func handleCompletion(cmd *cobra.Command) error {
	switch cliOpts.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cliOpts.Completion)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&cliOpts.Verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&cliOpts.Quiet, "quiet", "q", false, "Only report errors")
	rootCmd.Flags().StringVar(&cliOpts.Completion, "completion", "", "Generate completion script")

	for _, cmd := range []*cobra.Command{exactCmd, shapesCmd} {
		cmd.Flags().BoolVarP(&cliOpts.Path, "path", "p", false, "Templatize file and directory paths")
		cmd.Flags().BoolVarP(&cliOpts.Contents, "contents", "c", false, "Templatize file contents")
	}
	for _, cmd := range []*cobra.Command{exactCmd, shapesCmd, escapeCmd} {
		cmd.Flags().BoolVar(&cliOpts.DryRun, "dry-run", false, "Report changes without making them")
		cmd.Flags().BoolVarP(&cliOpts.Interactive, "interactive", "i", false, "Prompt for each change")
		rootCmd.AddCommand(cmd)
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
