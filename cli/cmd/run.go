package cmd

import (
	"context"
	"io"
	"os"

	"github.com/ardnew/dash/lang"
	"github.com/ardnew/dash/log"
)

// defaultScript executes when no script file is given. It serves as a
// smoke test and a first impression of the language.
const defaultScript = `let x = 0
while x < 5 {
  print(x)
  let x = x + 1
}
`

// Run executes a dash script.
type Run struct {
	Script string `arg:"" help:"Script file, or '-' for stdin" name:"script" optional:""`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) error {
	source := defaultScript

	if r.Script != "" {
		var err error

		source, err = readScript(r.Script)
		if err != nil {
			return err
		}
	}

	return lang.Run(ctx, source,
		lang.WithOutput(stdout(ctx)),
		lang.WithLogger(log.Default()),
	)
}

// stdout returns the kong-configured output writer, or os.Stdout when
// running outside a parsed CLI.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}
