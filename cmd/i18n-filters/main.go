package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	i18n "github.com/goliatone/go-i18n-filters"
)

type cliConfig struct {
	filter       string
	locale       string
	currencyCode string
	format       string
	noGrouping   bool
	strict       bool
	xtext        bool
	conventions  string
	messagesDir  string
	locales      []string
	values       []string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "i18n-filters: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig
	var localeList localeFlag

	flag.StringVar(&cfg.filter, "filter", "currency", "filter to apply (currency, money, money_with_currency, money_without_currency, money_without_trailing_zeros, decimal, translate)")
	flag.StringVar(&cfg.locale, "locale", "en-US", "locale to format for")
	flag.StringVar(&cfg.currencyCode, "code", "", "ISO 4217 currency code override")
	flag.StringVar(&cfg.format, "format", "", "number pattern override, e.g. '¤#,##0.00'")
	flag.BoolVar(&cfg.noGrouping, "no-grouping", false, "suppress digit group separators")
	flag.BoolVar(&cfg.strict, "strict", false, "fail on uncoercible input instead of formatting zero")
	flag.BoolVar(&cfg.xtext, "xtext", false, "format with CLDR data from golang.org/x/text instead of the embedded conventions table")
	flag.StringVar(&cfg.conventions, "conventions", "", "path to a conventions JSON file extending the embedded defaults")
	flag.StringVar(&cfg.messagesDir, "messages", "", "directory of per-locale translation catalogs for the translate filter")
	flag.Var(&localeList, "load", "locale catalog to preload from the messages directory. Repeat flag to add more.")

	flag.Parse()

	cfg.locales = localeList.items
	cfg.values = flag.Args()
	if len(cfg.values) == 0 {
		return cliConfig{}, errors.New("at least one value argument is required")
	}

	return cfg, nil
}

func run(cfg cliConfig) error {
	opts := []i18n.Option{
		i18n.WithDefaultLocale(cfg.locale),
	}
	if cfg.strict {
		opts = append(opts, i18n.WithStrictCoercion())
	}
	if cfg.xtext {
		opts = append(opts, i18n.WithXTextEngine())
	}
	if cfg.conventions != "" {
		opts = append(opts, i18n.WithConventions(cfg.conventions))
	}
	if cfg.messagesDir != "" {
		opts = append(opts,
			i18n.WithLoader(i18n.NewFileLoader(cfg.messagesDir)),
			i18n.WithLocales(cfg.locales...),
		)
	}

	config, err := i18n.NewConfig(opts...)
	if err != nil {
		return err
	}

	registry, err := config.Registry()
	if err != nil {
		return err
	}

	var callOpts []i18n.CallOption
	if cfg.currencyCode != "" {
		callOpts = append(callOpts, i18n.CurrencyCode(cfg.currencyCode))
	}
	if cfg.format != "" {
		callOpts = append(callOpts, i18n.Pattern(cfg.format))
	}
	if cfg.noGrouping {
		callOpts = append(callOpts, i18n.GroupSeparator(false))
	}

	ctx := i18n.MapContext{"locale": cfg.locale}
	for _, value := range cfg.values {
		out, err := registry.Format(cfg.filter, ctx, value, callOpts...)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}
