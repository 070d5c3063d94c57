// Package format reads argumentation frameworks from files.
//
// Four encodings are understood: the ICCMA-style apx fact list, trivial
// graph format (tgf), and TOML or YAML documents with "arguments" and
// "attacks" keys. Every reader produces a validated *af.Framework; syntax
// problems come back as *ParseError, semantic ones (dangling attacks,
// duplicate labels) as errors.ErrInvalidFramework.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
)

// Format names an input encoding.
type Format string

const (
	APX  Format = "apx"
	TGF  Format = "tgf"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Formats lists the supported encodings.
var Formats = []Format{APX, TGF, TOML, YAML}

// ErrUnknownFormat is returned by Detect for unrecognised extensions.
var ErrUnknownFormat = errors.New("unknown input format")

// Detect picks the format from the file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".apx", ".af":
		return APX, nil
	case ".tgf":
		return TGF, nil
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	err := errors.Wrapf(ErrUnknownFormat, "%s", path)
	return "", errors.WithHint(err, "use one of .apx, .tgf, .toml, .yaml")
}

// ParseFile reads and validates the framework stored at path.
func ParseFile(path string) (*af.Framework, error) {
	f, err := Detect(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(ErrorKindIO, "cannot read framework").
			WithFile(path).
			WithUnderlying(err)
	}
	fw, err := Parse(bytes.NewReader(data), f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.File == "" {
			pe.File = path
		}
		return nil, err
	}
	return fw, nil
}

// Parse decodes a framework from r.
func Parse(r io.Reader, f Format) (*af.Framework, error) {
	switch f {
	case APX:
		return parseAPX(r)
	case TGF:
		return parseTGF(r)
	case TOML:
		return parseTOML(r)
	case YAML:
		return parseYAML(r)
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
}

// Name returns the base name of path without its extension; result files
// are named after it.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// document is the shared TOML/YAML shape.
type document struct {
	Arguments []string   `toml:"arguments" yaml:"arguments"`
	Attacks   [][]string `toml:"attacks" yaml:"attacks"`
}

func (d document) framework() (*af.Framework, error) {
	args := make([]af.Argument, len(d.Arguments))
	for i, a := range d.Arguments {
		args[i] = af.Argument(a)
	}
	attacks := make([]af.Attack, 0, len(d.Attacks))
	for i, pair := range d.Attacks {
		if len(pair) != 2 {
			return nil, NewParseError(ErrorKindStructure, "attack must be a pair").
				WithSuggestion(`write attacks as ["attacker", "target"]`).
				WithUnderlying(errors.Newf("attacks[%d] has %d elements", i, len(pair)))
		}
		attacks = append(attacks, af.Attack{From: af.Argument(pair[0]), To: af.Argument(pair[1])})
	}
	return af.New(args, attacks)
}
