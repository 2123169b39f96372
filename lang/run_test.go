package lang

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
)

type programFixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

func loadFixtures(t *testing.T, name string) []programFixture {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}

	var fixtures []programFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}

	return fixtures
}

func TestRun_Fixtures(t *testing.T) {
	for _, fx := range loadFixtures(t, "programs.yaml") {
		t.Run(fx.Name, func(t *testing.T) {
			var buf bytes.Buffer

			if err := Run(t.Context(), fx.Source, WithOutput(&buf)); err != nil {
				t.Fatalf("run error: %v", err)
			}

			if got := buf.String(); got != fx.Output {
				t.Errorf("output mismatch\nwant:\n%s\ngot:\n%s", fx.Output, got)
			}
		})
	}
}
