package format

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/argx/af"
	"github.com/teranos/argx/errors"
)

func parseTOML(r io.Reader) (*af.Framework, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		pe := NewParseError(ErrorKindSyntax, "invalid TOML").WithUnderlying(err)
		var terr toml.ParseError
		if errors.As(err, &terr) {
			pe.Line = terr.Position.Line
		}
		return nil, pe
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return nil, NewParseError(ErrorKindStructure, "unknown keys: "+strings.Join(keys, ", ")).
			WithSuggestion("only 'arguments' and 'attacks' are read")
	}
	return doc.framework()
}

func parseYAML(r io.Reader) (*af.Framework, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		pe := NewParseError(ErrorKindSyntax, "invalid YAML").WithUnderlying(err)
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			pe.Kind = ErrorKindStructure
			pe.WithSuggestion("expected 'arguments' (list) and 'attacks' (list of pairs)")
		}
		return nil, pe
	}
	return doc.framework()
}
