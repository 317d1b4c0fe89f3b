package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/payinput/pkg/logger"
	"github.com/dmitrymomot/payinput/pkg/sanitizer"
	"github.com/dmitrymomot/payinput/pkg/securitycode"
)

type securityCodeResult struct {
	Code           string `json:"code" yaml:"code"`
	Network        string `json:"network" yaml:"network"`
	Title          string `json:"title" yaml:"title"`
	Logo           string `json:"logo" yaml:"logo"`
	RequiredLength int    `json:"required_length" yaml:"required_length"`
	Accepted       bool   `json:"accepted" yaml:"accepted"`
	Complete       bool   `json:"complete" yaml:"complete"`
}

func securityCodeCmd(a *app) *cobra.Command {
	var network, cardNumber string

	cmd := &cobra.Command{
		Use:     "securitycode VALUE...",
		Aliases: []string{"cvv", "cvc"},
		Short:   "Check card security codes for a card network",
		Long: `Check card security codes for a card network.

The network comes from --card-number (detected from its prefix), then
--network, then DEFAULT_CARD_NETWORK. Codes are masked in the output.`,
		Example: `  payinput securitycode --network amex 1234
  payinput cvv --card-number 4111111111111111 123 1234`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.network(network, cardNumber)
			if err != nil {
				return err
			}

			results := make([]securityCodeResult, 0, len(args))
			t := table{header: []string{"CODE", "NETWORK", "TITLE", "LENGTH", "ACCEPTED", "COMPLETE"}}
			for _, in := range args {
				r := securityCodeResult{
					Code:           sanitizer.MaskSecurityCode(in),
					Network:        n.String(),
					Title:          securitycode.Title(n),
					Logo:           securitycode.LogoKindFor(n).String(),
					RequiredLength: securitycode.RequiredLength(n),
					Accepted:       securitycode.ShouldAccept(n, in),
					Complete:       securitycode.IsComplete(n, in),
				}

				a.log.DebugContext(cmd.Context(), "security code checked",
					logger.Classification(n),
					logger.Length(len([]rune(in))),
					logger.Accepted(r.Accepted),
					logger.Valid(r.Complete),
				)

				results = append(results, r)
				t.rows = append(t.rows, []string{
					r.Code, r.Network, r.Title, strconv.Itoa(r.RequiredLength), yesNo(r.Accepted), yesNo(r.Complete),
				})
			}

			if err := render(cmd.OutOrStdout(), a.output, results, t); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "card network (visa, mastercard, amex, ...)")
	cmd.Flags().StringVar(&cardNumber, "card-number", "", "detect the network from this card number")

	return cmd
}
