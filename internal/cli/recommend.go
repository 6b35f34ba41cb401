package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/winematch/internal/catalog"
	"github.com/vijay-prabhu/winematch/internal/output"
	"github.com/vijay-prabhu/winematch/internal/session"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank wines for a set of preferences",
	Long: `Rank wines by how many of the given tags they match.

Each wine scores matched tags divided by selected tags, as a percentage.
Wines that match nothing are left out. Run 'winematch options' to see the
tags you can pick from.

Examples:
  winematch recommend --words bold                         # One descriptive word
  winematch recommend --words bold,rich --moods evening    # Several categories
  winematch recommend --foods "red meat" -o json           # Output as JSON`,
	RunE: runRecommend,
}

var (
	recommendWords []string
	recommendFoods []string
	recommendMoods []string
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringSliceVar(&recommendWords, "words", nil, "Descriptive words (comma-separated)")
	recommendCmd.Flags().StringSliceVar(&recommendFoods, "foods", nil, "Foods (comma-separated)")
	recommendCmd.Flags().StringSliceVar(&recommendMoods, "moods", nil, "Moods (comma-separated)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	sess := session.New(cat, cfg.Options, logger)
	result := sess.Result()

	picks := map[catalog.Category][]string{
		catalog.CategoryWords: recommendWords,
		catalog.CategoryFoods: recommendFoods,
		catalog.CategoryMoods: recommendMoods,
	}
	for _, c := range catalog.Categories {
		if len(picks[c]) == 0 {
			continue
		}
		if result, err = sess.Select(c, picks[c]...); err != nil {
			return err
		}
	}

	return output.Output(outputFmt, result)
}
