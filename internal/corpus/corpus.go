// Package corpus carga y valida el banco estatico de respuestas.
package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"levelup-api/internal/domain"
)

//go:embed responses.yaml
var embeddedCorpus []byte

type corpusFile struct {
	Responses []domain.ResponseRecord `yaml:"responses"`
}

// Load lee el corpus desde un archivo YAML, o desde el corpus embebido en el
// binario cuando path esta vacio. Las entradas malformadas se rechazan aca, en
// tiempo de carga, nunca en tiempo de query.
func Load(path string) ([]domain.ResponseRecord, error) {
	data := embeddedCorpus
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read corpus file: %w", err)
		}
		data = b
	}
	return parse(data)
}

func parse(data []byte) ([]domain.ResponseRecord, error) {
	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if len(f.Responses) == 0 {
		return nil, errors.New("corpus has no responses")
	}

	for i, rec := range f.Responses {
		if strings.TrimSpace(rec.Text) == "" {
			return nil, fmt.Errorf("corpus record %d: empty text", i)
		}
		if !rec.Mood.Valid() {
			return nil, fmt.Errorf("corpus record %d: unknown mood %q", i, rec.Mood)
		}
		if !domain.ValidStyle(rec.Style) {
			return nil, fmt.Errorf("corpus record %d: unknown style %q", i, rec.Style)
		}
	}
	return f.Responses, nil
}
