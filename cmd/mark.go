package cmd

import (
	"fmt"
	"os"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/quiz"
	"github.com/spf13/cobra"
)

func newMarkCmd() *cobra.Command {
	markCmd := &cobra.Command{
		Use:   "mark <quiz-file>",
		Short: "Mark a quiz answer sheet (YAML or JSON)",
		Long: "Mark a quiz answer sheet and print the percentage and weighted score.\n" +
			"With --trainee the generated assessment is recorded for that trainee.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quiz.Load(args[0])
			if err != nil {
				return err
			}

			m := quiz.NewMarking(q)
			a, err := m.GenerateAssessment()
			if err != nil {
				return err
			}
			r := m.Result()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Quiz:     %s (%s)\n", q.Name, a.Kind)
			fmt.Fprintf(out, "Correct:  %d/%d\n", r.Correct, r.Total)
			fmt.Fprintf(out, "Mark:     %d%%\n", r.Percentage)
			fmt.Fprintf(out, "Weighted: %.2f\n", a.CalculateScore())
			if r.Total == 0 {
				fmt.Fprintf(os.Stderr, "warning: quiz %q has no questions\n", q.Name)
			}

			ref, _ := cmd.Flags().GetString("trainee")
			if ref == "" {
				return nil
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

			repo := st.TraineeRepo()
			t, err := findTrainee(cmd, repo, ref)
			if err != nil {
				return err
			}
			if _, err := repo.AddAssessment(cmd.Context(), t.ID, a); err != nil {
				return fmt.Errorf("record assessment: %w", err)
			}
			fmt.Fprintf(out, "Recorded %q for %s\n", a.Name, t.Name)
			return nil
		},
	}
	markCmd.Flags().String("trainee", "", "Record the result for this trainee (ID or email)")
	return markCmd
}
