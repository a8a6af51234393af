package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/abhishek622/journalMin/internal/assistant"
	"github.com/abhishek622/journalMin/internal/bootstrap"
	"github.com/abhishek622/journalMin/internal/config"
	"github.com/abhishek622/journalMin/internal/logger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "journalctl",
	Short:         "Operational CLI for the journal service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.AddCommand(newMigrateCmd(), newAskCmd(), newMoodsCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema for the configured DB_DRIVER",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.LoadDB()
			if err != nil {
				return err
			}
			repo, closeStore, err := bootstrap.OpenRepository(cmd.Context(), *db)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := repo.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema applied (%s)\n", db.Driver)
			return nil
		},
	}
}

func newAskCmd() *cobra.Command {
	var (
		userID      string
		entryID     string
		questions   []string
		answers     []string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask the assistant about one journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.NewLogger(cfg.Env)
			if err != nil {
				return err
			}
			defer log.Sync()

			repo, closeStore, err := bootstrap.OpenRepository(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer closeStore()

			completer, err := bootstrap.NewCompleter(cmd.Context(), cfg.LLM)
			if err != nil {
				return err
			}
			svc := assistant.NewService(repo.Entry, completer, log.Named("assistant"))

			s := &session{svc: svc, userID: userID, entryID: entryID, questions: questions, answers: answers}
			if interactive {
				return s.repl(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return s.once(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "Owner user ID (required)")
	cmd.Flags().StringVarP(&entryID, "entry", "e", "", "Entry ID (required)")
	cmd.Flags().StringArrayVarP(&questions, "question", "q", nil, "Question, repeat for earlier turns")
	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "Earlier answer, one per answered question")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Keep asking questions read from stdin")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("entry")
	return cmd
}

func newMoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "Print the mood catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMoods(cmd.OutOrStdout())
		},
	}
}
