package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/payinput/pkg/logger"
	"github.com/dmitrymomot/payinput/pkg/validator"
)

const (
	fieldPostcode     = "postcode"
	fieldCardNumber   = "card_number"
	fieldSecurityCode = "security_code"
)

type checkError struct {
	Field          string `json:"field" yaml:"field"`
	Message        string `json:"message" yaml:"message"`
	TranslationKey string `json:"translation_key" yaml:"translation_key"`
}

type checkResult struct {
	Valid  bool         `json:"valid" yaml:"valid"`
	Fields []string     `json:"fields" yaml:"fields"`
	Errors []checkError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func checkCmd(a *app) *cobra.Command {
	var (
		country      string
		strict       bool
		network      string
		postalCode   string
		cardNumber   string
		securityCode string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a submitted billing form",
		Long: `Validate a submitted billing form the way a server would on submit.

The postal code is always checked. The card number is checked when given,
and the security code is checked whenever a card number or code is given.
Exits with an error when any field is invalid.`,
		Example: `  payinput check --country GB --postcode "SW1A 1AA" \
    --card-number "3782 822463 10005" --security-code 1234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.country(country)
			if err != nil {
				return err
			}
			// An explicit network is checked against the card number
			// rather than replaced by the detected one.
			n, err := a.network(network, "")
			if network == "" {
				n, err = a.network("", cardNumber)
			}
			if err != nil {
				return err
			}

			fields := []string{fieldPostcode}
			rules := []validator.Rule{
				validator.RequiredString(fieldPostcode, postalCode),
				validator.ValidPostcodeWith(fieldPostcode, a.postcodeValidator(strict), c, postalCode),
			}
			if cardNumber != "" {
				fields = append(fields, fieldCardNumber)
				rules = append(rules, validator.ValidCardNumber(fieldCardNumber, cardNumber))
				if network != "" {
					rules = append(rules, validator.CardNumberMatchesNetwork(fieldCardNumber, cardNumber, n))
				}
			}
			if cardNumber != "" || securityCode != "" {
				fields = append(fields, fieldSecurityCode)
				rules = append(rules, validator.ValidSecurityCode(fieldSecurityCode, n, securityCode))
			}

			verr := validator.Apply(rules...)
			errs := validator.ExtractValidationErrors(verr)

			res := checkResult{Valid: errs.IsEmpty(), Fields: fields}
			t := table{header: []string{"FIELD", "RESULT", "KEY"}}
			for _, f := range fields {
				if !errs.Has(f) {
					t.rows = append(t.rows, []string{f, "ok", ""})
					continue
				}
				var keys []string
				for _, e := range errs {
					if e.Field == f {
						keys = append(keys, e.TranslationKey)
						res.Errors = append(res.Errors, checkError{Field: f, Message: e.Message, TranslationKey: e.TranslationKey})
					}
				}
				t.rows = append(t.rows, []string{f, strings.Join(errs.Get(f), "; "), strings.Join(keys, ", ")})
			}

			a.log.DebugContext(cmd.Context(), "form checked",
				logger.Classification(c),
				logger.Valid(res.Valid),
			)

			if err := render(cmd.OutOrStdout(), a.output, res, t); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
			return verr
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "", "billing country (default from DEFAULT_BILLING_COUNTRY)")
	cmd.Flags().BoolVar(&strict, "strict", false, "require the whole value to be a postal code")
	cmd.Flags().StringVarP(&network, "network", "n", "", "card network the card number must belong to")
	cmd.Flags().StringVar(&postalCode, "postcode", "", "billing postal code")
	cmd.Flags().StringVar(&cardNumber, "card-number", "", "card number")
	cmd.Flags().StringVar(&securityCode, "security-code", "", "card security code")

	return cmd
}
