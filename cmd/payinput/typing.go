package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/payinput/pkg/inputfield"
	"github.com/dmitrymomot/payinput/pkg/sanitizer"
	"github.com/dmitrymomot/payinput/pkg/securitycode"
)

// backspaceKey deletes the last character when it appears in typed text.
const backspaceKey = '<'

type keystroke struct {
	Key      string `json:"key" yaml:"key"`
	Accepted bool   `json:"accepted" yaml:"accepted"`
	Text     string `json:"text" yaml:"text"`
	Valid    bool   `json:"valid" yaml:"valid"`
}

type typingResult struct {
	FieldID        string      `json:"field_id" yaml:"field_id"`
	Classification string      `json:"classification" yaml:"classification"`
	Keystrokes     []keystroke `json:"keystrokes" yaml:"keystrokes"`
	Text           string      `json:"text" yaml:"text"`
	Valid          bool        `json:"valid" yaml:"valid"`
	Events         int         `json:"events" yaml:"events"`
}

func typeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Type text into a simulated form field one key at a time",
		Long: `Type text into a simulated form field one key at a time.

Every character is offered to the field as a separate key press and is
kept only if the field accepts it. A '<' deletes the last character.`,
	}

	cmd.AddCommand(typePostcodeCmd(a))
	cmd.AddCommand(typeSecurityCodeCmd(a))

	return cmd
}

func typePostcodeCmd(a *app) *cobra.Command {
	var (
		country string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:     "postcode TEXT",
		Short:   "Type into a postal code field",
		Example: `  payinput type postcode --country GB "SW1A 1AA!"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.country(country)
			if err != nil {
				return err
			}
			policy := a.postcodeValidator(strict).For(c)
			return a.simulate(cmd, policy, args[0], func(s string) string { return s })
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "", "billing country (default from DEFAULT_BILLING_COUNTRY)")
	cmd.Flags().BoolVar(&strict, "strict", false, "require the whole value to be a postal code")

	return cmd
}

func typeSecurityCodeCmd(a *app) *cobra.Command {
	var network, cardNumber string

	cmd := &cobra.Command{
		Use:     "securitycode TEXT",
		Aliases: []string{"cvv", "cvc"},
		Short:   "Type into a card security code field",
		Example: `  payinput type securitycode --network amex 12345`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.network(network, cardNumber)
			if err != nil {
				return err
			}
			return a.simulate(cmd, securitycode.For(n), args[0], sanitizer.MaskSecurityCode)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "card network (visa, mastercard, amex, ...)")
	cmd.Flags().StringVar(&cardNumber, "card-number", "", "detect the network from this card number")

	return cmd
}

// simulate feeds text into a field key by key and renders what happened.
// show controls how field text appears in the output.
func (a *app) simulate(cmd *cobra.Command, policy inputfield.Policy, text string, show func(string) string) error {
	var events int
	field := inputfield.New(policy,
		inputfield.WithLogger(a.log),
		inputfield.WithObserver(inputfield.ObserverFunc(func(context.Context, inputfield.Event) {
			events++
		})),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res := typingResult{
		FieldID:        field.ID().String(),
		Classification: fmt.Sprint(policy),
	}
	t := table{header: []string{"KEY", "ACCEPTED", "TEXT", "VALID"}}

	for _, r := range text {
		var ok bool
		key := string(r)
		if r == backspaceKey {
			key = "backspace"
			ok = field.Backspace(ctx)
		} else {
			ok = field.Type(ctx, string(r))
		}

		k := keystroke{Key: key, Accepted: ok, Text: show(field.Text()), Valid: field.Valid()}
		res.Keystrokes = append(res.Keystrokes, k)
		t.rows = append(t.rows, []string{strconv.Quote(k.Key), yesNo(k.Accepted), strconv.Quote(k.Text), yesNo(k.Valid)})
	}

	res.Text = show(field.Text())
	res.Valid = field.Valid()
	res.Events = events

	if err := render(cmd.OutOrStdout(), a.output, res, t); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
