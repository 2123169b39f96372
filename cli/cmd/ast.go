package cmd

import (
	"context"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/dash/lang"
	"github.com/ardnew/dash/log"
)

// Ast parses a script and prints its structure without executing it.
type Ast struct {
	Script string `arg:"" help:"Script file, or '-' for stdin" name:"script" optional:""`
	Format string `default:"yaml" enum:"json,yaml" help:"Output encoding" short:"o"`
}

// Run executes the ast command.
func (a *Ast) Run(ctx context.Context) error {
	source := defaultScript

	if a.Script != "" {
		var err error

		source, err = readScript(a.Script)
		if err != nil {
			return err
		}
	}

	tree, err := lang.ParseString(ctx, source, lang.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	native := lang.ToNative(lang.Build(tree))

	var data []byte

	switch a.Format {
	case "json":
		data, err = json.MarshalIndent(native, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		data = append(data, '\n')

	default:
		data, err = yaml.Marshal(native)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	}

	_, err = stdout(ctx).Write(data)

	return err
}
