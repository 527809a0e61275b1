package cmd

import (
	"fmt"
	"time"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/report"
	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/trainee"
	"github.com/spf13/cobra"
)

func newTraineeCmd() *cobra.Command {
	traineeCmd := &cobra.Command{
		Use:   "trainee",
		Short: "Register and inspect trainees",
	}
	traineeCmd.AddCommand(newTraineeAddCmd())
	traineeCmd.AddCommand(newTraineeListCmd())
	traineeCmd.AddCommand(newTraineeShowCmd())
	return traineeCmd
}

func newTraineeAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new trainee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			dobStr, _ := cmd.Flags().GetString("dob")

			dob, err := trainee.ParseDate(dobStr)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			t := trainee.New(name, email, dob)
			if err := st.TraineeRepo().Create(cmd.Context(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s> as %s\n", t.Name, t.Email, t.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Trainee name")
	addCmd.Flags().String("email", "", "Trainee email address")
	addCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("email")
	addCmd.MarkFlagRequired("dob")
	return addCmd
}

func newTraineeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered trainees with their weighted averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			list, err := st.TraineeRepo().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list trainees: %w", err)
			}
			report.New(cmd.OutOrStdout(), cfg.NoColor).Trainees(list, time.Now())
			return nil
		},
	}
}

func newTraineeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|email>",
		Short: "Show a trainee and their assessments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			t, err := findTrainee(cmd, st.TraineeRepo(), args[0])
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout(), cfg.NoColor).Trainee(t, time.Now())
			return nil
		},
	}
}
