package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Load loads a plan file from the given path.
// The format is determined by the file extension:
//   - .json for JSON
//   - .yaml or .yml for YAML
//   - .hcl for HCL
//   - .fsbatch will try both YAML and HCL formats
func Load(ctx context.Context, path string) (*Plan, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading plan")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading plan file: %w", err)
	}

	plan, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	plan.location = path

	if err := plan.Validate(); err != nil {
		return nil, errors.Errorf("validating plan: %w", err)
	}

	return plan, nil
}

// Parse decodes plan data, picking the format from filename. It does not validate.
func Parse(data []byte, filename string) (*Plan, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	// For .fsbatch files, try both YAML and HCL
	if ext == ".fsbatch" || filepath.Base(filename) == ".fsbatch" {
		plan, yamlErr := loadYAML(data)
		if yamlErr == nil {
			return plan, nil
		}

		plan, err := loadHCL(data, filename)
		if err == nil {
			return plan, nil
		}

		return nil, errors.Errorf("failed to parse %s as YAML (%v) or HCL: %w", filename, yamlErr, err)
	}

	switch ext {
	case ".json":
		return loadJSON(data)
	case ".yaml", ".yml":
		return loadYAML(data)
	case ".hcl":
		return loadHCL(data, filename)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
}

// loadJSON loads a plan from JSON data
func loadJSON(data []byte) (*Plan, error) {
	var plan Plan
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&plan); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &plan, nil
}

// loadYAML loads a plan from YAML data
func loadYAML(data []byte) (*Plan, error) {
	var plan Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &plan, nil
}

// loadHCL loads a plan from HCL data
func loadHCL(data []byte, filename string) (*Plan, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(),
		},
	}

	var plan Plan
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &plan)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &plan, nil
}

// envObject exposes the process environment to HCL as env.NAME
func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
