package config

// Frame file loading and validation.
//
// A frame file is a YAML description of one J1587 message: the sender MID
// and an ordered parameter list. Payloads are written as hex strings so the
// file mirrors the way frames appear in the J1587 documents.
//
//   mid: 195
//   parameters:
//     - pid: 501
//       value_hex: "48 65 6C 6C 6F 20 77 6F 72 6C 64"

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/truckbus/j1587"
	"github.com/truckbus/j1587/internal/hexfmt"
)

// ParameterSpec describes one parameter of a frame file.
type ParameterSpec struct {
	PID      int    `yaml:"pid"`
	ValueHex string `yaml:"value_hex,omitempty"`
	// Addressee is required for a data link escape parameter and rejected
	// for every other kind.
	Addressee *int `yaml:"addressee,omitempty"`
}

// FrameFile is the top-level frame description.
type FrameFile struct {
	MID        int             `yaml:"mid"`
	Parameters []ParameterSpec `yaml:"parameters"`
}

// Load reads and parses a frame file. Codec-level validation happens in
// Build, not here.
func Load(path string) (*FrameFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read frame file: %w", err)
	}
	var f FrameFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse frame file %s: %w", path, err)
	}
	return &f, nil
}

// Build constructs the described message, running every codec validation.
// Errors carry the index of the offending parameter.
func (f *FrameFile) Build() (j1587.Message, error) {
	params := make([]j1587.Parameter, 0, len(f.Parameters))
	for i, spec := range f.Parameters {
		p, err := spec.build()
		if err != nil {
			return j1587.Message{}, fmt.Errorf("parameter %d: %w", i, err)
		}
		params = append(params, p)
	}
	return j1587.NewMessage(f.MID, params)
}

func (s ParameterSpec) build() (j1587.Parameter, error) {
	pid, err := j1587.NewPID(s.PID)
	if err != nil {
		return j1587.Parameter{}, err
	}
	payload, err := hexfmt.Parse(s.ValueHex)
	if err != nil {
		return j1587.Parameter{}, err
	}

	if pid.Kind() != j1587.KindDataLinkEscape && s.Addressee != nil {
		return j1587.Parameter{}, fmt.Errorf("addressee is only valid for a data link escape, not %s", pid)
	}

	switch pid.Kind() {
	case j1587.KindSingle:
		return j1587.NewFixedSingle(pid, payload)
	case j1587.KindDouble:
		return j1587.NewFixedDouble(pid, payload)
	case j1587.KindVariable:
		return j1587.NewVariable(pid, payload)
	default:
		if s.Addressee == nil {
			return j1587.Parameter{}, fmt.Errorf("%s requires an addressee", pid)
		}
		if *s.Addressee < 0 || *s.Addressee > j1587.MaxMID {
			return j1587.Parameter{}, fmt.Errorf("addressee %d out of range [0,%d]", *s.Addressee, j1587.MaxMID)
		}
		return j1587.NewDataLinkEscape(pid, byte(*s.Addressee), payload)
	}
}
