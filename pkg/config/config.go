// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📝 WriteSpec is a single file to write
type WriteSpec struct {
	Name string `json:"name" yaml:"name" hcl:"name"`
	Data string `json:"data,omitempty" yaml:"data,omitempty" hcl:"data,optional"`
}

// 📦 CopySpec is a directory tree to mirror
type CopySpec struct {
	Source string   `json:"source" yaml:"source" hcl:"source"`
	Target string   `json:"target" yaml:"target" hcl:"target"`
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"` // doublestar patterns relative to Source
}

// 📚 Plan is a batch of file system operations.
// Stages run in field order: mkdir, write, copy, read, unlink.
type Plan struct {
	Mkdir  []string    `json:"mkdir,omitempty" yaml:"mkdir,omitempty" hcl:"mkdir,optional"`
	Write  []WriteSpec `json:"write,omitempty" yaml:"write,omitempty" hcl:"write,block"`
	Copy   []CopySpec  `json:"copy,omitempty" yaml:"copy,omitempty" hcl:"copy,block"`
	Read   []string    `json:"read,omitempty" yaml:"read,omitempty" hcl:"read,optional"`
	Unlink []string    `json:"unlink,omitempty" yaml:"unlink,omitempty" hcl:"unlink,optional"`

	location string
}

// Location returns the file the plan was loaded from, if any
func (p *Plan) Location() string {
	return p.location
}

// IsEmpty reports whether the plan has nothing to do
func (p *Plan) IsEmpty() bool {
	return len(p.Mkdir) == 0 && len(p.Write) == 0 && len(p.Copy) == 0 && len(p.Read) == 0 && len(p.Unlink) == 0
}

// 🔍 Validate checks the plan and cleans every path in place
func (p *Plan) Validate() error {
	if p.IsEmpty() {
		return errors.Errorf("plan has no operations")
	}

	for i, dir := range p.Mkdir {
		if dir == "" {
			return errors.Errorf("mkdir[%d]: path is required", i)
		}
		p.Mkdir[i] = filepath.Clean(dir)
	}

	for i := range p.Write {
		if p.Write[i].Name == "" {
			return errors.Errorf("write[%d]: name is required", i)
		}
		p.Write[i].Name = filepath.Clean(p.Write[i].Name)
	}

	for i := range p.Copy {
		c := &p.Copy[i]
		if c.Source == "" {
			return errors.Errorf("copy[%d]: source is required", i)
		}
		if c.Target == "" {
			return errors.Errorf("copy[%d]: target is required", i)
		}
		c.Source = filepath.Clean(c.Source)
		c.Target = filepath.Clean(c.Target)
		for _, pattern := range c.Ignore {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Errorf("copy[%d]: invalid ignore pattern %q", i, pattern)
			}
		}
	}

	for i, file := range p.Read {
		if file == "" {
			return errors.Errorf("read[%d]: path is required", i)
		}
		p.Read[i] = filepath.Clean(file)
	}

	for i, file := range p.Unlink {
		if file == "" {
			return errors.Errorf("unlink[%d]: path is required", i)
		}
		p.Unlink[i] = filepath.Clean(file)
	}

	return nil
}

// 📝 String returns a short summary of the plan
func (p *Plan) String() string {
	return fmt.Sprintf("mkdir:%d write:%d copy:%d read:%d unlink:%d",
		len(p.Mkdir), len(p.Write), len(p.Copy), len(p.Read), len(p.Unlink))
}
