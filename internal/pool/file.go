package pool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/nmt/internal/question"
)

// FileSource reads the pool from a local JSON or YAML file. The format is
// chosen by extension.
type FileSource struct {
	Path   string
	Logger *zap.Logger
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{Path: path, Logger: logger}
}

func (f *FileSource) Fetch(ctx context.Context) ([]question.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(f.Path, err)
	}
	data, err := ReadFile(f.Path)
	if err != nil {
		return nil, unavailable(f.Path, err)
	}
	return decode(f.Path, data, f.Logger)
}

// ReadFile returns the pool file at path as a JSON array, converting YAML
// files (.yaml, .yml) on the way.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlToJSON(data)
	}
	return data, nil
}

// yamlToJSON re-encodes a YAML document as JSON so records go through the
// same schema validation as JSON pools.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}
