package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hcminh/folio/internal/config"
	"github.com/hcminh/folio/internal/content"
	"github.com/hcminh/folio/internal/credential"
	"github.com/hcminh/folio/internal/llm"
	"github.com/hcminh/folio/internal/logging"
	"github.com/hcminh/folio/internal/prompts"
	"github.com/hcminh/folio/internal/toolbox"
	"github.com/hcminh/folio/internal/tui"
	"github.com/hcminh/folio/internal/tui/theme"
	"github.com/hcminh/folio/internal/view"
)

var (
	providerFlag string
	modelFlag    string
	langFlag     string

	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio and AI toolbox in your terminal",
	Long: `folio is a bilingual (English/Vietnamese) portfolio with an AI toolbox:
a YouTube title generator, a script timer, a headline generator, an idiom
explainer, a clan name generator and a chat assistant.

The AI tools need a Gemini API key. Set it in Help & Support inside the app,
with 'folio config set gemini <key>', or through API_KEY in the environment
or a .env file.

Supported providers:
  gemini   - Google Gemini API (default)
  openai   - OpenAI-compatible API (requires OPENAI_API_KEY)`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  setup,
	PersistentPostRun: teardown,
	Run:               runTUI,
}

// setup loads .env and routes logs to the log file. The TUI owns stdout.
func setup(cmd *cobra.Command, args []string) {
	envErr := godotenv.Load()

	level := os.Getenv("FOLIO_LOG_LEVEL")
	if level == "" {
		level = config.Get().LogLevel
	}

	f, err := logging.OpenFile(config.LogPath())
	if err != nil {
		logging.Configure(level, os.Stderr)
		log.Warn().Err(err).Msg("cannot open log file, logging to stderr")
	} else {
		logFile = f
		logging.Configure(level, f)
	}

	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn().Err(envErr).Msg("failed to load .env")
	}
}

func teardown(cmd *cobra.Command, args []string) {
	if logFile != nil {
		logFile.Close()
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// newController wires the credential store, model client and adapters.
func newController() (*view.Controller, string, error) {
	cfg := config.Get()
	provider := firstNonEmpty(providerFlag, cfg.Provider, config.ProviderGemini)
	model := firstNonEmpty(modelFlag, cfg.Model, llm.DefaultModel(provider))

	creds := credential.New(config.CredentialBackend{Provider: provider}, config.EnvKey(provider))
	creds.Subscribe(func(present bool) {
		log.Info().Str("provider", provider).Bool("present", present).Msg("credential changed")
	})
	client, err := llm.New(llm.Options{
		Provider: provider,
		Model:    model,
		BaseURL:  cfg.BaseURL,
		Keys:     creds,
	})
	if err != nil {
		return nil, "", err
	}

	system := prompts.ChatSystem(content.MustLoad("en").Profile())
	ctrl := view.New(view.Options{
		Lang:        firstNonEmpty(langFlag, cfg.Language, "en"),
		Theme:       cfg.Theme,
		Tools:       toolbox.New(client, creds, system),
		Credentials: creds,
		Persist:     config.Set,
		OnTheme:     theme.Set,
	})

	log.Debug().Str("provider", provider).Str("model", model).Bool("key", creds.Present()).Msg("session ready")
	return ctrl, model, nil
}

func runTUI(cmd *cobra.Command, args []string) {
	ctrl, model, err := newController()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Supported providers: gemini, openai")
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.New(ctrl, model),
		tea.WithAltScreen(),
		tea.WithoutBracketedPaste(), // avoid escape sequence leaks into inputs
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle().Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&providerFlag, "provider", "p", "", "LLM provider (gemini, openai)")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (provider-specific)")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Content and response language (en, vi)")
}
