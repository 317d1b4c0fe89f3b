package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/payinput/pkg/cardnetwork"
	"github.com/dmitrymomot/payinput/pkg/config"
	"github.com/dmitrymomot/payinput/pkg/logger"
	"github.com/dmitrymomot/payinput/pkg/postcode"
)

// settings come from the environment or a .env file.
type settings struct {
	Env       string                  `env:"PAYINPUT_ENV" envDefault:"development"`
	LogLevel  slog.Level              `env:"PAYINPUT_LOG_LEVEL" envDefault:"warn"`
	LogFormat logger.Format           `env:"PAYINPUT_LOG_FORMAT" envDefault:"text"`
	MatchMode postcode.MatchMode      `env:"POSTCODE_MATCH_MODE" envDefault:"contains"`
	Country   postcode.BillingCountry `env:"DEFAULT_BILLING_COUNTRY" envDefault:"GB"`
	Network   cardnetwork.Network     `env:"DEFAULT_CARD_NETWORK" envDefault:"unknown"`
}

type app struct {
	settings   settings
	log        *slog.Logger
	output     string
	verbose    bool
	configOpts []config.Option
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payinput",
		Short: "Check postal codes and card security codes the way payment forms do",
		Long: `payinput runs the payment form input rules from the terminal.

Each value is checked twice: whether a form would let it be typed
(accepted) and whether it is a finished, valid value (complete).

Defaults are read from the environment or a .env file:
  DEFAULT_BILLING_COUNTRY, DEFAULT_CARD_NETWORK, POSTCODE_MATCH_MODE,
  PAYINPUT_ENV, PAYINPUT_LOG_LEVEL, PAYINPUT_LOG_FORMAT`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "text", "output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every validation step")

	cmd.AddCommand(postcodeCmd(a))
	cmd.AddCommand(securityCodeCmd(a))
	cmd.AddCommand(typeCmd(a))
	cmd.AddCommand(checkCmd(a))

	return cmd
}

// setup loads settings and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.settings, a.configOpts...); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	switch a.output {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format %q", a.output)
	}

	switch logger.Format(strings.ToLower(string(a.settings.LogFormat))) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("unknown log format %q", a.settings.LogFormat)
	}

	level := a.settings.LogLevel
	if a.verbose {
		level = slog.LevelDebug
	}

	a.log = logger.New(
		logger.WithEnvironment(a.settings.Env, "payinput"),
		logger.WithLevel(level),
		logger.WithFormat(a.settings.LogFormat),
		logger.WithOutput(cmd.ErrOrStderr()),
	)
	return nil
}

// country resolves the --country flag, falling back to the configured default.
func (a *app) country(flag string) (postcode.BillingCountry, error) {
	if flag == "" {
		return a.settings.Country, nil
	}
	return postcode.ParseBillingCountry(flag)
}

// network prefers a card number, then the --network flag, then the default.
func (a *app) network(flag, cardNumber string) (cardnetwork.Network, error) {
	if cardNumber != "" {
		return cardnetwork.Detect(cardNumber), nil
	}
	if flag == "" {
		return a.settings.Network, nil
	}
	return cardnetwork.Parse(flag)
}

func (a *app) postcodeValidator(strict bool) *postcode.Validator {
	mode := a.settings.MatchMode
	if strict {
		mode = postcode.MatchFull
	}
	return postcode.New(postcode.WithMatchMode(mode))
}
