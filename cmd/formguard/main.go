// Command formguard validates a booking or registration submission and prints
// a JSON report.
//
//	formguard -form registration -in submission.yaml
//
// The exit code is 0 for a valid form, 1 for an invalid one and 2 when the
// input or configuration cannot be used.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/environment"
	"github.com/dmitrymomot/formguard/pkg/forms"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitFailure = 2
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

type runIDKey struct{}

// report is the JSON document written to stdout.
type report struct {
	Form     string                      `json:"form"`
	Valid    bool                        `json:"valid"`
	Errors   validator.ErrorState        `json:"errors"`
	Outcomes []validator.Outcome         `json:"outcomes,omitempty"`
	Strength *validator.PasswordStrength `json:"strength,omitempty"`
}

func main() {
	code, err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "formguard:", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	flags := flag.NewFlagSet("formguard", flag.ContinueOnError)
	flags.SetOutput(stderr)
	formName := flags.String("form", "", "form schema name; defaults to the submission's form field")
	in := flags.String("in", "-", "submission file (YAML or JSON), - for stdin")
	verbose := flags.Bool("v", false, "include every field outcome in the report")
	envFile := flags.String("env-file", "", "optional .env file to load before reading configuration")
	if err := flags.Parse(args); err != nil {
		return exitFailure, err
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return exitFailure, err
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return exitFailure, err
	}
	var rules validator.Config
	if err := config.Load(&rules); err != nil {
		return exitFailure, err
	}

	opts := []logger.Option{
		logger.WithOutput(stderr),
		logger.WithEnvironment(app.Env, "formguard"),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextValue(runIDKey{}, logger.RunID),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if app.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(app.LogLevel))
	}
	if app.LogFormat != "" {
		format, err := logger.ParseFormat(app.LogFormat)
		if err != nil {
			return exitFailure, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	log := logger.New(opts...)

	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	ctx = environment.WithContext(ctx, environment.Parse(app.Env))

	data, err := readInput(*in, stdin)
	if err != nil {
		log.ErrorContext(ctx, "failed to read submission", logger.Error(err))
		return exitFailure, err
	}
	sub, err := forms.DecodeSubmission(data)
	if err != nil {
		log.ErrorContext(ctx, "failed to decode submission", logger.Error(err))
		return exitFailure, err
	}

	name := *formName
	if name == "" {
		name = sub.Form
	}
	schema, err := forms.Lookup(name)
	if err != nil {
		log.ErrorContext(ctx, "unknown form", logger.Form(name), logger.Error(err))
		return exitFailure, err
	}

	v, err := schema.Validator(
		validator.WithConfig(rules),
		validator.WithLogger(log.With(logger.Form(schema.Name))),
	)
	if err != nil {
		return exitFailure, err
	}

	fields := schema.Bind(sub.Values)
	res := v.ValidateForm(fields)

	out := report{Form: schema.Name, Valid: res.Valid, Errors: res.Errors}
	if *verbose {
		out.Outcomes = res.Outcomes
	}
	for _, f := range fields {
		if f.Name == validator.Password && f.Value != "" {
			strength := validator.ScorePassword(f.Value)
			out.Strength = &strength
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return exitFailure, err
	}

	log.InfoContext(ctx, "submission checked",
		logger.Form(schema.Name),
		logger.Error(res.Err()),
	)

	if !res.Valid {
		return exitInvalid, nil
	}
	return exitValid, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			return nil, errors.New("no submission on stdin")
		}
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
