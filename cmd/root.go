package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loog-project/sidebyside/internal/feed"
	"github.com/loog-project/sidebyside/internal/gesture"
	"github.com/loog-project/sidebyside/internal/scroll"
	"github.com/loog-project/sidebyside/internal/ui"
)

var (
	// persistent flags
	cfgFile          string
	enableDebugMode  bool
	truncateDebugLog bool

	// local flags
	demoScript string
)

var rootCmd = &cobra.Command{
	Use:   "sidebyside [FLAGS]",
	Short: "Two lists, one scroll",
	Long: `sidebyside shows the same 10,000 items twice, as a single column on the left
and as a staggered grid on the right. Scrolling one list scrolls the other by
exactly the same amount. Drag with the mouse, use the wheel or the keyboard.
A ctrl-click counts as a second finger and is ignored.`,
	Args:              cobra.NoArgs,
	ValidArgsFunction: cobra.NoFileCompletions,
	PreRunE:           validateFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var setupLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().
	Caller().
	Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	cobra.OnInitialize(initConfig)

	// global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.sidebyside.yaml)")
	rootCmd.PersistentFlags().BoolVar(&enableDebugMode, "debug", false,
		"Enable debug mode, which will print additional information to the debug.log file")
	rootCmd.PersistentFlags().BoolVar(&truncateDebugLog, "truncate-debug", false,
		"Truncate the debug.log file on startup, if it exists")
	rootCmd.PersistentFlags().Int("items", feed.DefaultItemCount,
		"Number of items shown in both lists")
	rootCmd.PersistentFlags().Int("columns", ui.DefaultGridColumns,
		"Number of columns of the staggered grid (1-12)")
	rootCmd.PersistentFlags().String("height-expr", feed.DefaultLinearHeightExpr,
		"Item height expression of the single column list (env: Index, Value, Tag)")
	rootCmd.PersistentFlags().String("grid-height-expr", feed.DefaultStaggeredHeightExpr,
		"Item height expression of the staggered grid (env: Index, Value, Tag)")
	rootCmd.PersistentFlags().Float64("friction", scroll.DefaultFriction,
		"Fling deceleration, higher values stop sooner")

	// sidebyside command flags
	rootCmd.Flags().StringVar(&demoScript, "script", "",
		"Play a gesture script on startup")

	// allow some flags to be set via environment variables / config file
	for _, name := range []string{"debug", "truncate-debug", "items", "columns", "height-expr", "grid-height-expr", "friction"} {
		mustBind(name, viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sidebyside")
	}

	viper.SetEnvPrefix("SIDEBYSIDE")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		setupLog.Info().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// configFromViper collects the list configuration from flags, env and config file.
func configFromViper() ui.Config {
	return ui.Config{
		Items:            viper.GetInt("items"),
		Columns:          viper.GetInt("columns"),
		LinearHeightExpr: viper.GetString("height-expr"),
		GridHeightExpr:   viper.GetString("grid-height-expr"),
		Friction:         viper.GetFloat64("friction"),
	}
}

// setupDebugLog routes the global logger to debug.log, or discards everything
// if debug mode is off. The returned func closes the log file.
func setupDebugLog() func() {
	if !viper.GetBool("debug") {
		// by default, we shouldn't log anything as this would break our TUI.
		log.Logger = zerolog.Nop()
		return func() {}
	}

	setupLog.Info().Msg("Debug mode is enabled, setting up debug logger...")

	fileMode := os.O_CREATE | os.O_WRONLY
	if viper.GetBool("truncate-debug") {
		fileMode |= os.O_TRUNC
	} else {
		fileMode |= os.O_APPEND
	}
	logFile, logError := os.OpenFile("debug.log", fileMode, 0o644)
	if logError != nil {
		setupLog.Fatal().Err(logError).Msg("Error opening debug log file")
	}

	log.Logger = zerolog.New(logFile).With().
		Timestamp().
		Caller().
		Logger().
		Level(zerolog.DebugLevel)

	return func() {
		if err := logFile.Close(); err != nil {
			setupLog.Error().Err(err).Msg("Error closing debug log file")
		}
	}
}

// run is the main entry point for the command execution.
func run(ctx context.Context) error {
	closeLog := setupDebugLog()
	defer closeLog()

	cfg := configFromViper()
	if demoScript != "" {
		setupLog.Info().
			Str("script", demoScript).
			Msg("Loading gesture script...")
		script, err := gesture.Load(demoScript)
		if err != nil {
			return fmt.Errorf("loading gesture script: %w", err)
		}
		cfg.Script = script
	}

	setupLog.Info().
		Int("items", cfg.Items).
		Int("columns", cfg.Columns).
		Msg("Laying out lists...")
	journal := ui.NewJournal(ui.DefaultJournalSize)
	listView, err := ui.NewListView(cfg, journal)
	if err != nil {
		return err
	}

	root := ui.NewRoot(ui.DarkTheme, journal, listView)
	program := tea.NewProgram(root,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, teaErr := program.Run(); teaErr != nil {
		setupLog.Error().Err(teaErr).Msg("Error running TUI program")
		return teaErr
	}
	return nil
}

func validateFlags(_ *cobra.Command, _ []string) error {
	if items := viper.GetInt("items"); items < 0 {
		return fmt.Errorf("--items must not be negative, got %d", items)
	}
	if columns := viper.GetInt("columns"); columns < 1 || columns > 12 {
		return fmt.Errorf("--columns must be within 1 and 12, got %d", columns)
	}
	if friction := viper.GetFloat64("friction"); friction <= 0 {
		return fmt.Errorf("--friction must be positive, got %v", friction)
	}
	return nil
}

func mustBind(flagName string, err error) {
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed to bind flag %s", flagName)
	}
}
