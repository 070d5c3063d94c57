package logger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/argx/sym"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Gruvbox Dark color palette (warm, muted, easy on eyes)
type gruvboxColors struct {
	fg       string
	aqua     string
	orange   string
	yellow   string
	green    string
	blue     string
	purple   string
	red      string
	gray     string
	redBg    string
	yellowBg string
}

var gruvbox = gruvboxColors{
	fg:       "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	aqua:     "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	orange:   "\x1b[38;5;208m", // Warm orange (#fe8019)
	yellow:   "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	green:    "\x1b[38;5;142m", // Muted green (#b8bb26)
	blue:     "\x1b[38;5;109m", // Soft blue (#83a598)
	purple:   "\x1b[38;5;175m", // Muted purple (#d3869b)
	red:      "\x1b[38;5;167m", // Warm red (#fb4934)
	gray:     "\x1b[38;5;245m", // Gray (#928374)
	redBg:    "\x1b[48;5;88m",  // Dark red background
	yellowBg: "\x1b[48;5;58m",  // Dark yellow background
}

// Everforest Dark color palette (natural forest greens)
type everforestColors struct {
	fg          string
	greenBright string // Bright leaf green
	greenMid    string // Mid forest green
	greenDeep   string // Deep forest green
	aqua        string // Blue-green water
	orange      string // Autumn orange
	yellow      string // Warm yellow
	red         string // Error red
	gray        string
	redBg       string
	yellowBg    string
}

var everforest = everforestColors{
	fg:          "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	greenBright: "\x1b[38;5;108m", // Bright green (#a7c080)
	greenMid:    "\x1b[38;5;107m", // Mid green (#83c092) - timestamps
	greenDeep:   "\x1b[38;5;65m",  // Deep green (#7fbbb3) - secondary
	aqua:        "\x1b[38;5;109m", // Blue-green (#7fbbb3) - ids
	orange:      "\x1b[38;5;208m", // Warm orange (#e69875) - components
	yellow:      "\x1b[38;5;179m", // Soft yellow (#dbbc7f) - warnings
	red:         "\x1b[38;5;167m", // Warm red (#e67e80) - errors
	gray:        "\x1b[38;5;243m", // Field keys
	redBg:       "\x1b[48;5;52m",  // Dark red background
	yellowBg:    "\x1b[48;5;58m",  // Dark yellow background
}

// Themes lists the accepted SetTheme values.
var Themes = []string{"everforest", "gruvbox"}

var currentTheme = "everforest"

// SetTheme configures the color scheme for console log output. Unknown
// names are ignored.
func SetTheme(theme string) {
	for _, t := range Themes {
		if t == theme {
			currentTheme = theme
			return
		}
	}
}

// Theme reports the active console theme.
func Theme() string {
	return currentTheme
}

func colorTime() string {
	if currentTheme == "everforest" {
		return everforest.greenMid
	}
	return gruvbox.aqua
}

func colorComponent(name string) string {
	// Hash for consistent color per component
	hash := 0
	for _, c := range name {
		hash += int(c)
	}

	if currentTheme == "everforest" {
		switch hash % 3 {
		case 0:
			return everforest.greenBright
		case 1:
			return everforest.greenDeep
		}
		return everforest.orange
	}

	if hash%2 == 0 {
		return gruvbox.orange
	}
	return gruvbox.yellow
}

// colorMessage picks the base message color from what the line is about.
func colorMessage(msg string) string {
	lower := strings.ToLower(msg)

	search := containsAny(lower, "search", "solved", "extension", "enumerat", "decid")
	watch := containsAny(lower, "watch", "changed", "reload")
	setup := containsAny(lower, "config", "database", "migrat", "opened", "recorded")

	if currentTheme == "everforest" {
		switch {
		case search:
			return everforest.greenBright
		case watch:
			return everforest.greenMid
		case setup:
			return everforest.greenDeep
		}
		return everforest.fg
	}

	switch {
	case watch:
		return gruvbox.blue
	case search:
		return gruvbox.green
	case setup:
		return gruvbox.orange
	}
	return gruvbox.fg
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var bracketPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// colorizeMessage applies context-aware colorization to a log message:
// [run:ID] markers, other bracketed stages, and glyphs.
func colorizeMessage(msg string) string {
	base := colorMessage(msg)

	stageColor := gruvbox.orange
	symbolColor := gruvbox.green
	if currentTheme == "everforest" {
		stageColor = everforest.orange
		symbolColor = everforest.greenBright
	}

	result := strings.Builder{}
	lastIndex := 0

	for _, match := range bracketPattern.FindAllStringSubmatchIndex(msg, -1) {
		if before := msg[lastIndex:match[0]]; before != "" {
			result.WriteString(base)
			result.WriteString(colorizeSymbols(before, symbolColor, base))
			result.WriteString(colorReset)
		}

		color := stageColor
		if strings.HasPrefix(msg[match[2]:match[3]], "run:") {
			color = colorID()
		}
		result.WriteString(color)
		result.WriteString(msg[match[0]:match[1]])
		result.WriteString(colorReset)

		lastIndex = match[1]
	}

	if remaining := msg[lastIndex:]; remaining != "" {
		result.WriteString(base)
		result.WriteString(colorizeSymbols(remaining, symbolColor, base))
		result.WriteString(colorReset)
	}

	return result.String()
}

var glyphs = append(append([]string{}, sym.PaletteOrder...), sym.DB, sym.Search, sym.Accepted, sym.Rejected)

// colorizeSymbols highlights argx glyphs, restoring base afterwards.
func colorizeSymbols(text, symbolColor, base string) string {
	for _, g := range glyphs {
		if strings.Contains(text, g) {
			text = strings.ReplaceAll(text, g, symbolColor+g+colorReset+base)
		}
	}
	return text
}

func colorID() string {
	if currentTheme == "everforest" {
		return everforest.aqua
	}
	return gruvbox.blue
}

func colorNumber() string {
	if currentTheme == "everforest" {
		return everforest.greenBright
	}
	return gruvbox.purple
}

func colorFg() string {
	if currentTheme == "everforest" {
		return everforest.fg
	}
	return gruvbox.fg
}

func colorKey() string {
	if currentTheme == "everforest" {
		return everforest.gray
	}
	return gruvbox.gray
}

func colorWarn() (string, string) {
	if currentTheme == "everforest" {
		return everforest.yellow, everforest.yellowBg
	}
	return gruvbox.yellow, gruvbox.yellowBg
}

func colorError() (string, string) {
	if currentTheme == "everforest" {
		return everforest.red, everforest.redBg
	}
	return gruvbox.red, gruvbox.redBg
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  solver  ⊨ search finished  DC-ST  12ms  extensions=3"
//
// Fields attached through With are kept in the embedded map encoder so they
// show up on every line of the derived logger.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return &minimalEncoder{MapObjectEncoder: clone}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colorTime())
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN and above
	if ent.Level >= zapcore.WarnLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	pairs := enc.pairs(fields)

	final.AppendString("  ")
	msg := ent.Message
	if glyph := symbolOf(pairs); glyph != "" {
		msg = glyph + " " + msg
	}
	final.AppendString(colorizeMessage(msg))

	if rendered := extractFieldValues(pairs); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")
	return final, nil
}

type fieldPair struct {
	key string
	val interface{}
}

// pairs flattens context fields (sorted by key) followed by the entry's own
// fields in call order.
func (enc *minimalEncoder) pairs(fields []zapcore.Field) []fieldPair {
	var out []fieldPair

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, fieldPair{k, enc.Fields[k]})
	}

	for _, f := range fields {
		m := zapcore.NewMapObjectEncoder()
		f.AddTo(m)
		if v, ok := m.Fields[f.Key]; ok {
			out = append(out, fieldPair{f.Key, v})
		}
	}
	return out
}

func symbolOf(pairs []fieldPair) string {
	for _, p := range pairs {
		if p.key == FieldSymbol {
			if s, ok := p.val.(string); ok {
				return s
			}
		}
	}
	return ""
}

func levelColorString(level zapcore.Level) string {
	warnColor, warnBg := colorWarn()
	errColor, errBg := colorError()

	switch level {
	case zapcore.WarnLevel:
		return colorBold + warnBg + warnColor + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + errBg + errColor + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + errBg + errColor + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: solver.worker -> s.worker
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, float32, float64:
		return true
	}
	return false
}

// extractFieldValues renders fields for the console. A few keys get a
// compact form (run ids, timings, graph sizes); every other field is
// printed as key=value. No field is ever dropped.
//
//	run_id=3f2a nodes=4 links=5 duration_ms=12 workers=8
//	-> 3f2a (4 nodes, 5 links) 12ms workers=8
func extractFieldValues(pairs []fieldPair) string {
	var values []string
	var nodeCount, linkCount string
	num := colorNumber()

	for _, p := range pairs {
		val := fmt.Sprint(p.val)
		switch p.key {
		case FieldSymbol:
			// rendered in front of the message
		case FieldRunID:
			values = append(values, colorID()+val+colorReset)
		case FieldNodes:
			nodeCount = val
		case FieldLinks:
			linkCount = val
		case FieldDurationMS:
			values = append(values, num+val+colorReset+"ms")
		case FieldError:
			errColor, _ := colorError()
			values = append(values, colorKey()+p.key+"="+colorReset+errColor+val+colorReset)
		default:
			color := colorFg()
			if isNumber(p.val) {
				color = num
			}
			values = append(values, colorKey()+p.key+"="+colorReset+color+val+colorReset)
		}
	}

	switch {
	case nodeCount != "" && linkCount != "":
		fg := colorFg()
		values = append(values, fg+"("+num+nodeCount+colorReset+fg+" nodes, "+num+linkCount+colorReset+fg+" links)"+colorReset)
	case nodeCount != "":
		values = append(values, colorKey()+FieldNodes+"="+colorReset+num+nodeCount+colorReset)
	case linkCount != "":
		values = append(values, colorKey()+FieldLinks+"="+colorReset+num+linkCount+colorReset)
	}

	return strings.Join(values, " ")
}
