package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	fv "github.com/Gobd/fieldvalidation"
)

type globalOptions struct {
	output  string
	envFile string
	verbose bool
}

func (o *globalOptions) validate() error {
	switch o.output {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
}

func (o *globalOptions) logger() (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// engine builds an engine from the environment, optionally seeded from the
// --env-file.
func (o *globalOptions) engine() (*fv.Engine, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}
	cfg, err := fv.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := o.logger()
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return fv.New(fv.WithConfig(cfg), fv.WithLogger(logger)), nil
}

func parseFieldType(s string) (fv.FieldType, error) {
	for _, t := range fv.FieldTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown field type %q (want one of %v)", s, fv.FieldTypes())
}
