package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smartgreeting/internal/config"
	"smartgreeting/internal/greeting"
	"smartgreeting/internal/responder"
)

// NewRootCmd builds the greetbot command tree. now is the clock used for
// replies; nil means time.Now.
func NewRootCmd(now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	var cfgFile string

	loadTable := func() (*greeting.Table, error) {
		return config.LoadGreetingTable(cfgFile)
	}

	rootCmd := &cobra.Command{
		Use:   "greetbot",
		Short: "Ask the Smart Greeting Bot from the terminal",
		Long: `greetbot answers the same canned queries as the web chat: the current time,
the time-of-day greeting, and who the bot is.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.Load().GreetingConfigFile, "greeting table YAML file")

	askCmd := &cobra.Command{
		Use:   "ask [message...]",
		Short: "Send a message and print the reply",
		Example: `  greetbot ask what time is it
  greetbot ask hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
			}
			reply := responder.New(table, now).Respond(strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
			return nil
		},
	}

	var hour int
	greetingCmd := &cobra.Command{
		Use:   "greeting",
		Short: "Print the greeting and its tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
			}

			g := table.At(now())
			if cmd.Flags().Changed("hour") {
				if g, err = table.Select(hour); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", g.Message, g.Tag)
			return nil
		},
	}
	greetingCmd.Flags().IntVar(&hour, "hour", 0, "hour of day (0-23) instead of the current hour")

	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "List the greeting table in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
			}
			for _, r := range table.Rules() {
				fmt.Fprintf(cmd.OutOrStdout(), "until %02d:00\t%s\t%s\n", r.UpperBound, r.Tag, r.Message)
			}
			return nil
		},
	}

	rootCmd.AddCommand(askCmd, greetingCmd, rulesCmd)
	return rootCmd
}

// Execute runs the root command with the wall clock.
func Execute() error {
	return NewRootCmd(nil).Execute()
}
