package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// LevelURL identifies the embedded level schema
const LevelURL = "https://levelgen.dev/schemas/level.schema.json"

//go:embed level.schema.json
var levelSchema []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Level returns the compiled level export schema
func Level() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		c.AssertFormat = true
		if err := c.AddResource(LevelURL, bytes.NewReader(levelSchema)); err != nil {
			compileErr = fmt.Errorf("add level schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(LevelURL)
	})
	return compiled, compileErr
}

// ValidateLevel checks any JSON-encodable value against the level schema
func ValidateLevel(v any) error {
	s, err := Level()
	if err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("decode level: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("level does not match schema: %w", err)
	}
	return nil
}
