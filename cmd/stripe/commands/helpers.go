package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// JSON formatting.
const defaultJSONIndent = 2

// defaultPageSize is the default --limit of list commands.
const defaultPageSize = constants.DefaultPageSize

// Common static errors used throughout the commands package.
var (
	ErrInvalidParamKey = errors.New("invalid parameter key")
	ErrConfirmDelete   = errors.New("refusing to delete without --yes")
)

// zeroDecimalCurrencies are charged in whole units.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// tableRenderer fills a table for the table output format.
type tableRenderer func(table *tablewriter.Table) error

// outputFormat returns the configured output format.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// renderOutput writes value as JSON or YAML, or calls renderTable.
func renderOutput(writer io.Writer, format string, value any, renderTable tableRenderer) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(value)
	case constants.FormatYAML:
		// Models only carry JSON tags and JSON marshalers. JSON is valid YAML,
		// and decoding it as YAML keeps integers intact.
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}

		var generic any

		err = yaml.Unmarshal(data, &generic)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}

		encoder := yaml.NewEncoder(writer)

		err = encoder.Encode(generic)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable:
		table := tablewriter.NewWriter(writer)

		err := renderTable(table)
		if err != nil {
			return err
		}

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}

// titles converts column names such as "amount_refunded" to "Amount Refunded".
func titles(columns ...string) []any {
	caser := cases.Title(language.English)

	headers := make([]any, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, caser.String(strings.ReplaceAll(column, "_", " ")))
	}

	return headers
}

// formatAmount renders an amount in the smallest currency unit, e.g. 2000 usd as "20.00 USD".
func formatAmount(amount int64, currency string) string {
	code := cases.Upper(language.English).String(currency)
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return fmt.Sprintf("%d %s", amount, code)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, code)
}

// formatTime renders a timestamp, or N/A when unset.
func formatTime(timestamp stripe.Timestamp) string {
	if timestamp.IsZero() {
		return constants.NotAvailable
	}

	return timestamp.UTC().Format(time.DateTime)
}

// orNA returns value, or N/A when it is empty.
func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// parseParams turns key=value pairs into parameters. Bracketed keys such as
// metadata[order] or items[0][price] build nested mappings, which encode to
// the same form keys.
func parseParams(pairs []string) (stripe.Params, error) {
	params := stripe.Params{}

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParam, pair)
		}

		path, err := splitParamKey(key)
		if err != nil {
			return nil, err
		}

		err = setParam(params, path, value)
		if err != nil {
			return nil, err
		}
	}

	return params, nil
}

// splitParamKey splits a[b][c] into [a b c].
func splitParamKey(key string) ([]string, error) {
	name, rest, _ := strings.Cut(key, "[")
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParamKey, key)
	}

	path := []string{name}
	if rest == "" {
		return path, nil
	}

	rest = "[" + rest
	for rest != "" {
		if !strings.HasPrefix(rest, "[") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParamKey, key)
		}

		end := strings.Index(rest, "]")
		if end < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParamKey, key)
		}

		path = append(path, rest[1:end])
		rest = rest[end+1:]
	}

	return path, nil
}

func setParam(params stripe.Params, path []string, value string) error {
	for i, segment := range path[:len(path)-1] {
		next, exists := params[segment]
		if !exists {
			nested := stripe.Params{}
			params[segment] = nested
			params = nested

			continue
		}

		nested, ok := next.(stripe.Params)
		if !ok {
			return fmt.Errorf("%w: %s is both a value and a mapping", ErrInvalidParamKey, strings.Join(path[:i+1], "."))
		}

		params = nested
	}

	last := path[len(path)-1]
	if _, exists := params[last]; exists {
		return fmt.Errorf("%w: %s is set twice", ErrInvalidParamKey, strings.Join(path, "."))
	}

	params[last] = stripe.String(value)

	return nil
}

// limitParam returns a page size pointer for list commands.
func limitParam(limit int) *int64 {
	if limit <= 0 {
		return nil
	}

	return stripe.Ptr(int64(limit))
}
