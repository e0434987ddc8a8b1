package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wsfmt/pkg/config"
	"github.com/walteh/wsfmt/pkg/log"
	"github.com/walteh/wsfmt/pkg/operation"
	"github.com/walteh/wsfmt/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// errCheckFailed marks the quiet exit of a check-only run that found files
// needing formatting: exit code 1, no extra error output.
var errCheckFailed = errors.New("files need formatting")

// 🔧 rootFlags holds command line values before they are merged into the
// configuration
type rootFlags struct {
	configFile string
	debug      bool

	checkOnly      bool
	followSymlinks bool
	exclude        string
	ignoreGlobs    []string
	color          string

	newLineMarker                  string
	addNewLineMarker               bool
	removeNewLineMarker            bool
	normalizeNewLineMarkers        bool
	removeTrailingWhitespace       bool
	removeLeadingEmptyLines        bool
	removeTrailingEmptyLines       bool
	normalizeEmptyFiles            string
	normalizeWhitespaceOnlyFiles   string
	normalizeNonStandardWhitespace string
	replaceTabsWithSpaces          int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "wsfmt [flags] path...",
		Short: "🧹 Normalize whitespace in text files",
		Long: `wsfmt normalizes new line markers, trailing whitespace, empty lines and
other whitespace in text files. Directories are searched recursively; with
--check-only files are left untouched and pending changes are reported.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, flags, args)
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds all flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default: probe .wsfmt.yaml, .yml, .hcl, .json)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")

	cmd.Flags().BoolVar(&flags.checkOnly, "check-only", false, "report changes without modifying any file")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links when searching directories")
	cmd.Flags().StringVar(&flags.exclude, "exclude", "", "regular expression of paths to exclude")
	cmd.Flags().StringSliceVar(&flags.ignoreGlobs, "ignore-glob", nil, "glob pattern of paths to ignore (repeatable)")
	cmd.Flags().StringVar(&flags.color, "color", "auto", "colored output: auto, on or off")

	cmd.Flags().StringVar(&flags.newLineMarker, "new-line-marker", "auto", "new line marker to write: auto, linux, macos or windows")
	cmd.Flags().BoolVar(&flags.addNewLineMarker, "add-new-line-marker-at-end-of-file", false, "ensure each file ends with a new line marker")
	cmd.Flags().BoolVar(&flags.removeNewLineMarker, "remove-new-line-marker-from-end-of-file", false, "remove the new line marker from the end of each file")
	cmd.Flags().BoolVar(&flags.normalizeNewLineMarkers, "normalize-new-line-markers", false, "rewrite all new line markers to the chosen one")
	cmd.Flags().BoolVar(&flags.removeTrailingWhitespace, "remove-trailing-whitespace", false, "remove whitespace at the end of each line")
	cmd.Flags().BoolVar(&flags.removeLeadingEmptyLines, "remove-leading-empty-lines", false, "remove empty lines at the start of each file")
	cmd.Flags().BoolVar(&flags.removeTrailingEmptyLines, "remove-trailing-empty-lines", false, "remove empty lines at the end of each file")
	cmd.Flags().StringVar(&flags.normalizeEmptyFiles, "normalize-empty-files", "ignore", "handling of empty files: ignore, empty or one-line")
	cmd.Flags().StringVar(&flags.normalizeWhitespaceOnlyFiles, "normalize-whitespace-only-files", "ignore", "handling of whitespace-only files: ignore, empty or one-line")
	cmd.Flags().StringVar(&flags.normalizeNonStandardWhitespace, "normalize-non-standard-whitespace", "ignore", "handling of vertical tab and form feed: ignore, replace-with-space or remove")
	cmd.Flags().IntVar(&flags.replaceTabsWithSpaces, "replace-tabs-with-spaces", -1, "replace tabs with this many spaces (negative keeps tabs)")
}

// resolveConfig loads the configuration file and lays explicitly set flags
// over it. An explicit --config that cannot be loaded is an error; without
// one the default file names are probed and absence just means defaults.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	ctx := cmd.Context()

	cfg := config.DefaultConfig()
	switch {
	case flags.configFile != "":
		loaded, err := config.Load(ctx, flags.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		if path, ok := config.FindDefault("."); ok {
			loaded, err := config.Load(ctx, path)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}
	}

	mergeFlags(cmd, flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeFlags applies flags the user actually set, so untouched flags keep
// the config file's values instead of clobbering them with defaults.
func mergeFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	set := cmd.Flags().Changed

	if set("check-only") {
		cfg.CheckOnly = flags.checkOnly
	}
	if set("follow-symlinks") {
		cfg.FollowSymlinks = flags.followSymlinks
	}
	if set("exclude") {
		cfg.Exclude = flags.exclude
	}
	if set("ignore-glob") {
		cfg.IgnoreGlobs = flags.ignoreGlobs
	}
	if set("color") {
		cfg.Color = flags.color
	}
	if set("new-line-marker") {
		cfg.NewLineMarker = flags.newLineMarker
	}
	if set("add-new-line-marker-at-end-of-file") {
		cfg.AddNewLineMarkerAtEndOfFile = flags.addNewLineMarker
	}
	if set("remove-new-line-marker-from-end-of-file") {
		cfg.RemoveNewLineMarkerFromEndOfFile = flags.removeNewLineMarker
	}
	if set("normalize-new-line-markers") {
		cfg.NormalizeNewLineMarkers = flags.normalizeNewLineMarkers
	}
	if set("remove-trailing-whitespace") {
		cfg.RemoveTrailingWhitespace = flags.removeTrailingWhitespace
	}
	if set("remove-leading-empty-lines") {
		cfg.RemoveLeadingEmptyLines = flags.removeLeadingEmptyLines
	}
	if set("remove-trailing-empty-lines") {
		cfg.RemoveTrailingEmptyLines = flags.removeTrailingEmptyLines
	}
	if set("normalize-empty-files") {
		cfg.NormalizeEmptyFiles = flags.normalizeEmptyFiles
	}
	if set("normalize-whitespace-only-files") {
		cfg.NormalizeWhitespaceOnlyFiles = flags.normalizeWhitespaceOnlyFiles
	}
	if set("normalize-non-standard-whitespace") {
		cfg.NormalizeNonStandardWhitespace = flags.normalizeNonStandardWhitespace
	}
	if set("replace-tabs-with-spaces") {
		cfg.ReplaceTabsWithSpaces = flags.replaceTabsWithSpaces
	}
}

// runFormat is the main entry point: resolve the configuration, walk the
// paths and format or check every file found.
func runFormat(cmd *cobra.Command, flags *rootFlags, args []string) error {
	ctx := cmd.Context()
	zlog := zerolog.Ctx(ctx)
	logger := log.FromContext(ctx)

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	status.ApplyColorMode(cfg.Color)
	zlog.Debug().Stringer("config", cfg).Strs("paths", args).Msg("configuration resolved")

	mode := "formatting files"
	if cfg.CheckOnly {
		mode = "checking files"
	}
	logger.Header(mode)

	statusMgr := status.New(cmd.OutOrStdout(), zlog, cfg.CheckOnly)
	op, err := operation.NewFormatOperation(operation.Options{
		Config:    cfg,
		StatusMgr: statusMgr,
		Paths:     args,
	})
	if err != nil {
		return err
	}

	if err := op.Execute(ctx); err != nil {
		return err
	}

	summary := statusMgr.Summary()
	if summary.CheckOnly && !summary.Clean() {
		logger.Warning(summary.String())
		return errCheckFailed
	}

	logger.Success(summary.String())
	return nil
}
