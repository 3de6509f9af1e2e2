package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/akhadjon/tarjimon/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tarjimon [text]",
		Short: "Uzbek to Russian/English Translator",
		Long: `tarjimon translates Uzbek text to Russian or English using a hosted
language model and keeps a local history of past translations.

Examples:
  tarjimon "Salom, qalaysan?"           # Translate to Russian (default)
  tarjimon --to en "Salom, qalaysan?"   # Translate to English
  tarjimon --tone formal "Rahmat"       # Business-correspondence phrasing
  tarjimon --batch phrases.txt          # Translate one line per entry
  tarjimon --history                    # Show recent translations`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default history location matches other local state
	home, _ := os.UserHomeDir()
	defaultHistoryPath := filepath.Join(home, ".local", "state", "tarjimon", "history.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tarjimon.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Target, "to", "t", flags.Target, "Target language (ru or en)")
	cmd.Flags().StringVar(&flags.Tone, "tone", flags.Tone, "Translation tone (natural, formal or slang)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate lines from file (one text per line)")
	cmd.Flags().BoolVar(&flags.ShowHistory, "history", false, "Show recent translations and exit")
	cmd.Flags().BoolVar(&flags.ClearHistory, "clear-history", false, "Delete all recorded translations and exit")
	cmd.Flags().StringVar(&flags.HistoryPath, "history-db", defaultHistoryPath, "History database file")

	// Translation backend flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: gemini, openai or stub")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model override for the selected provider")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for a single translation call")
	cmd.Flags().BoolVar(&flags.Breaker, "breaker", false, "Fail fast after repeated service failures")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.target", cmd.Flags().Lookup("to"))
	viper.BindPFlag("translate.tone", cmd.Flags().Lookup("tone"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("translate.breaker", cmd.Flags().Lookup("breaker"))
	viper.BindPFlag("history.path", cmd.Flags().Lookup("history-db"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".tarjimon" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tarjimon")
	}

	// Environment variables
	viper.SetEnvPrefix("TARJIMON")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.gemini_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// ResolveAPIKey returns the credential for the selected provider. The
// stub provider needs none.
func ResolveAPIKey(provider string) string {
	switch provider {
	case "openai":
		return GetOpenAIKey()
	case "stub":
		return ""
	default:
		return GetGeminiKey()
	}
}
