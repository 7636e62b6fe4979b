// Package profile loads named conversion presets from HCL files:
//
//	profile "rom16" {
//	  format = "hex"
//	  depth  = 16
//	  words  = 1024
//	  fill   = true
//	}
//
// Every attribute is optional and uses the same spelling as the b2t flags.
package profile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jamesliu96/bintext"
)

type Profile struct {
	Name     string  `hcl:"name,label"`
	Format   *string `hcl:"format,optional"`
	Endian   *string `hcl:"endian,optional"`
	Depth    *int    `hcl:"depth,optional"`
	Words    *int    `hcl:"words,optional"`
	Fill     *bool   `hcl:"fill,optional"`
	Line     *string `hcl:"line,optional"`
	Truncate *bool   `hcl:"truncate,optional"`
	Hash     *string `hcl:"hash,optional"`
}

type file struct {
	Profiles []*Profile `hcl:"profile,block"`
}

// Load parses the profiles of the HCL file at path.
func Load(path string) (map[string]*Profile, error) {
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, diags)
	}
	return decode(f, path)
}

// Parse is Load for in-memory source; filename only labels diagnostics.
func Parse(src []byte, filename string) (map[string]*Profile, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (map[string]*Profile, error) {
	var parsed file
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile file %s: %w", filename, diags)
	}
	profiles := make(map[string]*Profile, len(parsed.Profiles))
	for _, p := range parsed.Profiles {
		if _, ok := profiles[p.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate profile %q", filename, p.Name)
		}
		if err := p.Apply(&bintext.Config{}); err != nil {
			return nil, fmt.Errorf("%s: profile %q: %w", filename, p.Name, err)
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}

// Apply overwrites the fields of cfg that the profile sets.
func (p *Profile) Apply(cfg *bintext.Config) (err error) {
	if p.Format != nil {
		if cfg.Format, err = bintext.ParseFormat(*p.Format); err != nil {
			return
		}
	}
	if p.Endian != nil {
		if cfg.Endian, err = bintext.ParseEndian(*p.Endian); err != nil {
			return
		}
	}
	if p.Depth != nil {
		if err = bintext.CheckDepth(*p.Depth); err != nil {
			return
		}
		cfg.Depth = *p.Depth
	}
	if p.Words != nil {
		if *p.Words < 0 {
			return bintext.ErrWords
		}
		cfg.Words = *p.Words
	}
	if p.Fill != nil {
		cfg.Fill = bintext.NoFill
		if *p.Fill {
			cfg.Fill = bintext.FillFF
		}
	}
	if p.Line != nil {
		if cfg.LineEnding, err = bintext.ParseLineEnding(*p.Line); err != nil {
			return
		}
	}
	if p.Truncate != nil {
		cfg.Truncate = *p.Truncate
	}
	if p.Hash != nil {
		if cfg.Hash, err = bintext.ParseHash(*p.Hash); err != nil {
			return
		}
	}
	return
}
