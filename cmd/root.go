package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/observability"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var showMetrics bool

	rootCmd := &cobra.Command{
		Use:           "fit",
		Short:         "Fitness tracker client: log activities and read AI recommendations",
		Long:          "fit signs you in to the fitness tracker gateway, keeps your session on this machine, and lets you log activities, browse your history and read the AI recommendations generated for them.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !showMetrics {
				return nil
			}
			return observability.WriteSummary(cmd.ErrOrStderr(), prometheus.DefaultGatherer)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print client counters to stderr after the command")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newActivityCmd(app),
		newRecommendationCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
