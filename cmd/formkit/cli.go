package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ruleset"
	"github.com/dmitrymomot/formkit/pkg/validator"
	"github.com/dmitrymomot/formkit/pkg/vars"
)

// errInvalidData is returned by check when the data fails validation.
var errInvalidData = errors.New("data is invalid")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "formkit",
		Short:         "Validate and filter form data with declarative rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(), newRulesCmd())
	return root
}

type checkOptions struct {
	rulesPath     string
	dataPath      string
	dataFormat    string
	language      string
	messagesPaths []string
	output        string
	env           string
	logLevel      string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a data document against a rule set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.rulesPath, "rules", "r", "", "rule set file (.yaml, .yml or .json)")
	fs.StringVarP(&opts.dataPath, "data", "d", "-", "data file, - reads stdin")
	fs.StringVar(&opts.dataFormat, "data-format", "", "data format: json or yaml (default from extension, json for stdin)")
	fs.StringVar(&opts.language, "lang", "", "message language (overrides VALIDATOR_LANGUAGE)")
	fs.StringSliceVar(&opts.messagesPaths, "messages", nil, "message catalog files, later ones override earlier (overrides VALIDATOR_MESSAGES_FILES)")
	fs.StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	fs.StringVar(&opts.env, "env", "development", "environment for log defaults: development, staging or production")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	ctx := cmd.Context()
	log := logger.New(
		logger.WithEnvironment(opts.env, cmd.Root().Name()),
		logger.WithLevelName(opts.logLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
	)

	cfg, err := validator.LoadConfig()
	if err != nil {
		return err
	}
	if opts.language != "" {
		cfg.Language = opts.language
	}
	if len(opts.messagesPaths) > 0 {
		cfg.MessagesFiles = opts.messagesPaths
	}

	reg, err := validator.NewRegistryFromConfig(ctx, cfg, log)
	if err != nil {
		return err
	}

	set, err := ruleset.LoadFile(opts.rulesPath)
	if err != nil {
		return err
	}

	data, err := readData(cmd.InOrStdin(), opts.dataPath, opts.dataFormat)
	if err != nil {
		return err
	}

	v := set.Validate(data, validator.WithRegistry(reg), validator.WithLogger(log))
	log.DebugContext(ctx, "rule set applied", logger.Field(opts.rulesPath))

	if err := writeReport(cmd.OutOrStdout(), opts.output, v); err != nil {
		return err
	}
	if v.Invalid() {
		return errInvalidData
	}
	return nil
}

// readData decodes a JSON or YAML object document into a Vars target.
func readData(stdin io.Reader, path, format string) (*vars.Vars, error) {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	if format == "" {
		format = string(ruleset.FormatJSON)
		if path != "-" {
			f, err := ruleset.FormatForFile(path)
			if err != nil {
				return nil, err
			}
			format = string(f)
		}
	}

	var data map[string]any
	switch ruleset.Format(strings.ToLower(format)) {
	case ruleset.FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err = dec.Decode(&data); err == nil {
			data = normalizeNumbers(data).(map[string]any)
		}
	case ruleset.FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		return nil, fmt.Errorf("unsupported data format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return vars.FromMap(data), nil
}

// normalizeNumbers turns JSON numbers into int64 when they are whole and
// float64 otherwise, matching what YAML decoding produces.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, elem := range v {
			v[key] = normalizeNumbers(elem)
		}
	case []any:
		for i, elem := range v {
			v[i] = normalizeNumbers(elem)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	}
	return value
}

type report struct {
	Valid  bool                       `json:"valid"`
	Values map[string]any             `json:"values"`
	Errors validator.ValidationErrors `json:"errors,omitempty"`
}

func writeReport(w io.Writer, format string, v *validator.Validator) error {
	rep := report{
		Valid:  v.Valid(),
		Values: v.Values().Map(),
		Errors: validator.ExtractValidationErrors(v.Err()),
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "text":
		if rep.Valid {
			_, err := fmt.Fprintln(w, "valid")
			return err
		}
		for _, field := range rep.Errors.Fields() {
			if _, err := fmt.Fprintf(w, "%s: %s\n", field, strings.Join(rep.Errors.Get(field), "; ")); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in tests and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := validator.NewRegistry()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tests:")
			for _, name := range reg.Tests() {
				fmt.Fprintf(out, "  %-14s %s\n", name, reg.MessageFor(name))
			}
			fmt.Fprintln(out, "filters:")
			for _, name := range reg.Filters() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
