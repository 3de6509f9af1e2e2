package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/akhadjon/tarjimon/internal/batch"
	"codeberg.org/akhadjon/tarjimon/internal/cli"
	"codeberg.org/akhadjon/tarjimon/internal/history"
	"codeberg.org/akhadjon/tarjimon/internal/processor"
	"codeberg.org/akhadjon/tarjimon/internal/prompt"
	"codeberg.org/akhadjon/tarjimon/internal/translate"
)

var flags = cli.NewFlags()

func main() {
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.RunE = runCommand
	rootCmd.SilenceUsage = true

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	storage, err := history.OpenSQLiteStorage(historyPath())
	if err != nil {
		return err
	}
	defer storage.Close()

	store := history.NewStore(storage, logger)
	store.Load()

	if flags.ClearHistory {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared")
		return nil
	}
	if flags.ShowHistory {
		showHistory(store)
		return nil
	}

	target, err := prompt.ParseTarget(viper.GetString("translate.target"))
	if err != nil {
		return err
	}
	tone, err := prompt.ParseTone(viper.GetString("translate.tone"))
	if err != nil {
		return err
	}

	provider := viper.GetString("translate.provider")
	apiKey := cli.ResolveAPIKey(provider)

	translator, err := translate.New(translate.Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    viper.GetString("translate.model"),
		BaseURL:  viper.GetString("translate.base_url"),
		Timeout:  viper.GetDuration("translate.timeout"),
		Breaker:  viper.GetBool("translate.breaker"),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	proc := processor.New(processor.Options{
		Translator:        translator,
		Store:             store,
		CredentialPresent: apiKey != "" || provider == translate.ProviderStub,
		Logger:            logger,
	})

	if flags.BatchFile != "" {
		entries, err := batch.ReadBatchFile(flags.BatchFile)
		if err != nil {
			return err
		}
		summary := batch.Run(cmd.Context(), proc, entries, target, tone, os.Stdout)
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d translations failed", summary.Failed, summary.Total)
		}
		return nil
	}

	if len(args) == 0 {
		return errors.New("no text to translate (see --help)")
	}

	translated, err := proc.Submit(cmd.Context(), args[0], target, tone)
	if err != nil {
		return errors.New(processor.UserMessage(err))
	}

	fmt.Println(translated)
	return nil
}

func historyPath() string {
	if path := viper.GetString("history.path"); path != "" {
		return path
	}
	return flags.HistoryPath
}

func showHistory(store *history.Store) {
	records := store.Records()
	if len(records) == 0 {
		fmt.Println("No translations recorded yet")
		return
	}

	for _, rec := range records {
		when := time.UnixMilli(rec.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("%s  [%s>%s, %s]\n", when, rec.From, rec.To, rec.Tone)
		fmt.Printf("  %s\n", rec.Original)
		fmt.Printf("  %s\n\n", rec.Translated)
	}
}
