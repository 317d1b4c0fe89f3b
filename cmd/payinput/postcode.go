package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/payinput/pkg/logger"
	"github.com/dmitrymomot/payinput/pkg/postcode"
)

type postcodeResult struct {
	Input     string `json:"input" yaml:"input"`
	Country   string `json:"country" yaml:"country"`
	Accepted  bool   `json:"accepted" yaml:"accepted"`
	Complete  bool   `json:"complete" yaml:"complete"`
	Formatted string `json:"formatted,omitempty" yaml:"formatted,omitempty"`
}

func postcodeCmd(a *app) *cobra.Command {
	var (
		country string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "postcode VALUE...",
		Short: "Check postal codes for a billing country",
		Long: `Check postal codes for a billing country.

The country accepts ISO 3166 codes (GB, US, CA, DE, ...) or UK, USA,
Canada, Other. Countries without dedicated rules use the Other rules.`,
		Example: `  payinput postcode --country GB "SW1A 1AA" SW1A1AA
  payinput postcode --country US --strict 90210-1234`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.country(country)
			if err != nil {
				return err
			}
			v := a.postcodeValidator(strict)

			results := make([]postcodeResult, 0, len(args))
			t := table{header: []string{"INPUT", "COUNTRY", "ACCEPTED", "COMPLETE", "FORMATTED"}}
			for _, in := range args {
				r := postcodeResult{
					Input:    in,
					Country:  c.String(),
					Accepted: v.ShouldAccept(c, in),
					Complete: v.IsComplete(c, in),
				}
				if r.Complete {
					r.Formatted = postcode.Format(c, in)
				}

				a.log.DebugContext(cmd.Context(), "postcode checked",
					logger.Classification(c),
					logger.Length(len([]rune(in))),
					logger.Accepted(r.Accepted),
					logger.Valid(r.Complete),
					slog.String("mode", v.Mode().String()),
				)

				results = append(results, r)
				t.rows = append(t.rows, []string{
					strconv.Quote(in), r.Country, yesNo(r.Accepted), yesNo(r.Complete), r.Formatted,
				})
			}

			if err := render(cmd.OutOrStdout(), a.output, results, t); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "", "billing country (default from DEFAULT_BILLING_COUNTRY)")
	cmd.Flags().BoolVar(&strict, "strict", false, "require the whole value to be a postal code")

	return cmd
}
