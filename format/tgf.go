package format

import (
	"bufio"
	"io"
	"strings"

	"github.com/teranos/argx/af"
)

// parseTGF reads trivial graph format: one node per line (id, then an
// optional label that is ignored), a line holding only '#', then one edge
// per line as "from to".
func parseTGF(r io.Reader) (*af.Framework, error) {
	var (
		args    []af.Argument
		attacks []af.Attack
		edges   bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		raw := sc.Text()
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "#" && len(fields) == 1 {
			if edges {
				return nil, NewParseError(ErrorKindSyntax, "second '#' separator").WithLine(n, raw)
			}
			edges = true
			continue
		}

		if !edges {
			args = append(args, af.Argument(fields[0]))
			continue
		}
		if len(fields) < 2 {
			return nil, NewParseError(ErrorKindSyntax, "edge needs two node ids").
				WithLine(n, raw).
				WithSuggestion("edges look like: a b")
		}
		attacks = append(attacks, af.Attack{From: af.Argument(fields[0]), To: af.Argument(fields[1])})
	}
	if err := sc.Err(); err != nil {
		return nil, NewParseError(ErrorKindIO, "cannot read tgf input").WithUnderlying(err)
	}

	return af.New(args, attacks)
}
