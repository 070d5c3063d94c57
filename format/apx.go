package format

import (
	"bufio"
	"io"
	"strings"

	"github.com/teranos/argx/af"
)

// maxLine bounds a single input line for the line-based readers.
const maxLine = 1 << 20

// parseAPX reads facts of the form arg(a). and att(a,b). one per line.
// Text after % is a comment.
func parseAPX(r io.Reader) (*af.Framework, error) {
	var (
		args    []af.Argument
		attacks []af.Attack
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		raw := sc.Text()
		text := raw
		if i := strings.IndexByte(text, '%'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		pred, body, perr := splitFact(text)
		if perr != nil {
			return nil, perr.WithLine(n, raw)
		}

		switch pred {
		case "arg":
			if body == "" || strings.ContainsAny(body, ",()") {
				return nil, NewParseError(ErrorKindSyntax, "malformed argument").
					WithLine(n, raw).
					WithSuggestion("arguments look like arg(a1).")
			}
			args = append(args, af.Argument(body))
		case "att":
			from, to, ok := strings.Cut(body, ",")
			from, to = strings.TrimSpace(from), strings.TrimSpace(to)
			if !ok || from == "" || to == "" || strings.ContainsAny(from, "()") || strings.ContainsAny(to, ",()") {
				return nil, NewParseError(ErrorKindSyntax, "malformed attack").
					WithLine(n, raw).
					WithSuggestion("attacks look like att(a1,a2).")
			}
			attacks = append(attacks, af.Attack{From: af.Argument(from), To: af.Argument(to)})
		default:
			return nil, NewParseError(ErrorKindSyntax, "unknown fact "+pred).
				WithLine(n, raw).
				WithSuggestion("only arg(...) and att(...) facts are allowed")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, NewParseError(ErrorKindIO, "cannot read apx input").WithUnderlying(err)
	}

	return af.New(args, attacks)
}

// splitFact breaks "pred(body)." into its predicate and trimmed body.
func splitFact(text string) (string, string, *ParseError) {
	if !strings.HasSuffix(text, ".") {
		return "", "", NewParseError(ErrorKindSyntax, "fact must end with '.'").
			WithSuggestion("add a trailing period")
	}
	text = strings.TrimSpace(strings.TrimSuffix(text, "."))

	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return "", "", NewParseError(ErrorKindSyntax, "fact must look like name(...)")
	}
	pred := strings.TrimSpace(text[:open])
	body := strings.TrimSpace(text[open+1 : len(text)-1])
	return pred, body, nil
}
