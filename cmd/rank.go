package cmd

import (
	"github.com/huangsam/surveyrank/core"
	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd runs the full normalize-aggregate-rank pipeline.
var rankCmd = &cobra.Command{
	Use:   "rank [survey-file]",
	Short: "Rank courses and programs from a survey export.",
	Long: `Load a survey export, normalize every answer onto the unified 1-5 scale,
and rank courses and programs by mean rating.

Three answer families are recognized:
- ranked core-course preferences (rank 1-8, 1 is best)
- direct 1-5 ratings
- Likert agreement answers (Strongly Agree .. Strongly Disagree)

Output is a ranking table (text, csv, json or parquet) plus a horizontal
bar chart image in the same rank order.

Examples:
  # Rank an xlsx export, table to stdout, chart to outputs/
  surveyrank rank data/exit_survey.xlsx

  # Write the ranking as CSV and skip the chart
  surveyrank rank data/exit_survey.xlsx --output csv --output-file outputs/ranked_data.csv --no-chart

  # Fail the run on any malformed cell
  surveyrank rank data/exit_survey.xlsx --strict

  # Record the run in a local history database
  surveyrank rank data/exit_survey.xlsx --history-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSurveyRank(cfg, historyStore); err != nil {
			contract.LogFatal("Cannot run ranking", err)
		}
	},
}
