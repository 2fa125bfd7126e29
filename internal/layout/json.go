package layout

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/quillaja/totalmapper/internal/keycode"
)

// ParseLayout decodes a fancy layout document.
func ParseLayout(data []byte) (Layout, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Layout{}, fmt.Errorf("layout: invalid JSON: %w", err)
	}

	root, ok := raw.(map[string]any)
	if !ok {
		return Layout{}, fmt.Errorf("layout: must be a JSON object")
	}
	if len(root) != 1 {
		return Layout{}, fmt.Errorf("layout: must have a single field \"mappings\"")
	}
	mappingsV, ok := root["mappings"]
	if !ok {
		return Layout{}, fmt.Errorf("layout: must have a single field \"mappings\"")
	}
	arr, ok := mappingsV.([]any)
	if !ok {
		return Layout{}, fmt.Errorf("layout: \"mappings\" must be an array")
	}

	mappings := make([]Mapping, 0, len(arr))
	for i, mv := range arr {
		m, err := parseMapping(mv)
		if err != nil {
			return Layout{}, fmt.Errorf("layout: malformed mapping %d: %w", i, err)
		}
		mappings = append(mappings, m)
	}

	return Layout{Mappings: mappings}, nil
}

func parseMapping(v any) (Mapping, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Mapping{}, fmt.Errorf("each mapping must be an object")
	}

	fromV, ok := obj["from"]
	if !ok {
		return Mapping{}, fmt.Errorf("mapping must have \"from\"")
	}
	from, err := parseFrom(fromV)
	if err != nil {
		return Mapping{}, err
	}

	toV, hasTo := obj["to"]
	var to ToSpec
	if hasTo {
		to, err = parseTo(toV)
		if err != nil {
			return Mapping{}, err
		}
	}

	repeatV, hasRepeat := obj["repeat"]
	var repeat Repeat
	if hasRepeat {
		repeat, err = parseRepeat(repeatV)
		if err != nil {
			return Mapping{}, err
		}
	}

	if !hasTo && !hasRepeat {
		return Mapping{}, fmt.Errorf("mapping must have \"to\" or \"repeat\"")
	}

	absorbing, err := parseAbsorbing(obj["absorbing"])
	if err != nil {
		return Mapping{}, err
	}

	return Mapping{From: from, HasTo: hasTo, To: to, Repeat: repeat, Absorbing: absorbing}, nil
}

func parseFrom(v any) (FromSpec, error) {
	switch t := v.(type) {
	case string:
		ref, err := parseFromKeyText(t)
		return FromSpec{Terminal: ref}, err
	case map[string]any:
		ref, err := parseFromKeyObj(t)
		return FromSpec{Terminal: ref}, err
	case []any:
		if len(t) == 0 {
			return FromSpec{}, fmt.Errorf("can't map from zero keys, i.e. []")
		}
		mods := make([]Modifier, 0, len(t)-1)
		for _, mv := range t[:len(t)-1] {
			m, err := parseModifier(mv)
			if err != nil {
				return FromSpec{}, err
			}
			mods = append(mods, m)
		}
		terminal, err := parseFromTerminal(t[len(t)-1])
		if err != nil {
			return FromSpec{}, err
		}
		return FromSpec{Modifiers: mods, Terminal: terminal}, nil
	default:
		return FromSpec{}, fmt.Errorf("`from` must be a string, object, or array")
	}
}

func parseFromTerminal(v any) (KeyRef, error) {
	switch t := v.(type) {
	case string:
		return parseFromKeyText(t)
	case map[string]any:
		return parseFromKeyObj(t)
	default:
		return KeyRef{}, fmt.Errorf("`from` terminal must be a string or object")
	}
}

func parseFromKeyText(text string) (KeyRef, error) {
	if strings.HasPrefix(text, "@") {
		return KeyRef{}, fmt.Errorf("a real key was expected, but alias modifier %q was found", text)
	}
	code, err := keycode.Parse(text)
	if err != nil {
		return KeyRef{}, fmt.Errorf("unknown key code: %q", text)
	}
	return refOfCode(code), nil
}

func parseFromKeyObj(obj map[string]any) (KeyRef, error) {
	if len(obj) != 1 {
		return KeyRef{}, fmt.Errorf("`from` object must have a single field \"row\"")
	}
	rowV, ok := obj["row"]
	if !ok {
		return KeyRef{}, fmt.Errorf("`from` object must have a single field \"row\"")
	}
	rowText, ok := rowV.(string)
	if !ok {
		return KeyRef{}, fmt.Errorf("`row` must be a string")
	}
	row, ok := ParseRow(rowText)
	if !ok {
		return KeyRef{}, fmt.Errorf("unknown row: %q", rowText)
	}
	return refOfRow(row), nil
}

func parseModifier(v any) (Modifier, error) {
	text, ok := v.(string)
	if !ok {
		return Modifier{}, fmt.Errorf("modifier must be a string, found %v", v)
	}
	if strings.HasPrefix(text, "@") {
		return modAlias(text), nil
	}
	code, err := keycode.Parse(text)
	if err != nil {
		return Modifier{}, fmt.Errorf("unknown key: %q", text)
	}
	return modKey(code), nil
}

func parseTo(v any) (ToSpec, error) {
	switch t := v.(type) {
	case nil:
		return ToSpec{Terminal: refOfNull()}, nil
	case string:
		if strings.HasPrefix(t, "@") {
			return ToSpec{Terminal: refOfAlias(t)}, nil
		}
		code, err := keycode.Parse(t)
		if err != nil {
			return ToSpec{}, fmt.Errorf("unknown key code: %q", t)
		}
		return ToSpec{Terminal: refOfCode(code)}, nil
	case map[string]any:
		lettersV, ok := t["letters"]
		if !ok {
			return ToSpec{}, fmt.Errorf("`to` object must have a single field \"letters\"")
		}
		letters, ok := lettersV.(string)
		if !ok {
			return ToSpec{}, fmt.Errorf("`letters` must be a string")
		}
		return ToSpec{Terminal: refOfLetters(letters)}, nil
	case []any:
		if len(t) == 0 {
			return ToSpec{Terminal: refOfNull()}, nil
		}
		mods := make([]Modifier, 0, len(t)-1)
		for _, mv := range t[:len(t)-1] {
			m, err := parseModifier(mv)
			if err != nil {
				return ToSpec{}, err
			}
			mods = append(mods, m)
		}
		terminal, err := parseToTerminal(t[len(t)-1])
		if err != nil {
			return ToSpec{}, err
		}
		return ToSpec{Initial: mods, Terminal: terminal}, nil
	default:
		return ToSpec{}, fmt.Errorf("`to` must be a string, object, array, or null")
	}
}

func parseToTerminal(v any) (KeyRef, error) {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "@") {
			return refOfAlias(t), nil
		}
		code, err := keycode.Parse(t)
		if err != nil {
			return KeyRef{}, fmt.Errorf("unknown key code: %q", t)
		}
		return refOfCode(code), nil
	case map[string]any:
		lettersV, ok := t["letters"]
		if !ok {
			return KeyRef{}, fmt.Errorf("`to` object must have a single field \"letters\"")
		}
		letters, ok := lettersV.(string)
		if !ok {
			return KeyRef{}, fmt.Errorf("`letters` must be a string")
		}
		return refOfLetters(letters), nil
	default:
		return KeyRef{}, fmt.Errorf("`to` terminal must be a string or object")
	}
}

func parseRepeat(v any) (Repeat, error) {
	switch t := v.(type) {
	case string:
		switch t {
		case "Normal":
			return Repeat{Kind: RepeatNormal}, nil
		case "Disabled":
			return Repeat{Kind: RepeatDisabled}, nil
		default:
			return Repeat{}, fmt.Errorf("unknown repeat: %q", t)
		}
	case map[string]any:
		specialV, ok := t["Special"]
		if !ok {
			return Repeat{}, fmt.Errorf("repeat object must have a single field \"Special\"")
		}
		special, ok := specialV.(map[string]any)
		if !ok {
			return Repeat{}, fmt.Errorf("\"Special\" must be an object")
		}
		keys, err := parseTo(special["keys"])
		if err != nil {
			return Repeat{}, fmt.Errorf("repeat keys: %w", err)
		}
		delay, err := asInt(special["delay_ms"])
		if err != nil {
			return Repeat{}, fmt.Errorf("delay_ms: %w", err)
		}
		interval, err := asInt(special["interval_ms"])
		if err != nil {
			return Repeat{}, fmt.Errorf("interval_ms: %w", err)
		}
		return Repeat{Kind: RepeatSpecial, Keys: keys, DelayMs: delay, IntervalMs: interval}, nil
	default:
		return Repeat{}, fmt.Errorf("repeat must be a string or object")
	}
}

func asInt(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("must be a number")
	}
	return int(f), nil
}

func parseAbsorbing(v any) ([]Modifier, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		m, err := parseModifier(t)
		if err != nil {
			return nil, err
		}
		return []Modifier{m}, nil
	case []any:
		mods := make([]Modifier, 0, len(t))
		for _, mv := range t {
			m, err := parseModifier(mv)
			if err != nil {
				return nil, err
			}
			mods = append(mods, m)
		}
		return mods, nil
	default:
		return nil, fmt.Errorf("\"absorbing\" must be a string or array")
	}
}

// FormatLayout encodes l back to its canonical compact JSON form. Formatting
// is idempotent: formatting the result of parsing already-canonical text
// reproduces it byte-for-byte.
func FormatLayout(l Layout) []byte {
	parts := make([]string, len(l.Mappings))
	for i, m := range l.Mappings {
		parts[i] = formatMapping(m)
	}
	return []byte(`{"mappings":[` + strings.Join(parts, ",") + `]}`)
}

func formatMapping(m Mapping) string {
	fields := []string{`"from":` + formatFrom(m.From)}
	if m.HasTo {
		fields = append(fields, `"to":`+formatTo(m.To))
	}
	if s, ok := formatAbsorbing(m.Absorbing); ok {
		fields = append(fields, `"absorbing":`+s)
	}
	if s, ok := formatRepeat(m.Repeat); ok {
		fields = append(fields, `"repeat":`+s)
	}
	return "{" + strings.Join(fields, ",") + "}"
}

func formatFrom(f FromSpec) string {
	if len(f.Modifiers) == 0 {
		return formatFromTerminal(f.Terminal)
	}
	elems := make([]string, 0, len(f.Modifiers)+1)
	for _, m := range f.Modifiers {
		elems = append(elems, formatModifier(m))
	}
	elems = append(elems, formatFromTerminal(f.Terminal))
	return "[" + strings.Join(elems, ",") + "]"
}

func formatFromTerminal(k KeyRef) string {
	switch k.kind {
	case refRow:
		return `{"row":` + jsonString(k.row.String()) + `}`
	default:
		return jsonString(k.code.String())
	}
}

func formatTo(t ToSpec) string {
	if t.Terminal.kind == refNull && len(t.Initial) == 0 {
		return "[]"
	}
	if len(t.Initial) == 0 {
		return formatToTerminal(t.Terminal)
	}
	elems := make([]string, 0, len(t.Initial)+1)
	for _, m := range t.Initial {
		elems = append(elems, formatModifier(m))
	}
	if t.Terminal.kind != refNull {
		elems = append(elems, formatToTerminal(t.Terminal))
	}
	return "[" + strings.Join(elems, ",") + "]"
}

func formatToTerminal(k KeyRef) string {
	switch k.kind {
	case refLetters:
		return `{"letters":` + jsonString(k.letters) + `}`
	case refAlias:
		return jsonString(k.alias)
	default:
		return jsonString(k.code.String())
	}
}

func formatModifier(m Modifier) string {
	if m.isAlias() {
		return jsonString(m.Alias)
	}
	return jsonString(m.Code.String())
}

func formatAbsorbing(mods []Modifier) (string, bool) {
	if len(mods) == 0 {
		return "", false
	}
	if len(mods) == 1 {
		return formatModifier(mods[0]), true
	}
	elems := make([]string, len(mods))
	for i, m := range mods {
		elems[i] = formatModifier(m)
	}
	return "[" + strings.Join(elems, ",") + "]", true
}

func formatRepeat(r Repeat) (string, bool) {
	switch r.Kind {
	case RepeatNormal:
		return "", false
	case RepeatDisabled:
		return `"Disabled"`, true
	default:
		return fmt.Sprintf(`{"Special":{"keys":%s,"delay_ms":%d,"interval_ms":%d}}`,
			formatTo(r.Keys), r.DelayMs, r.IntervalMs), true
	}
}

func jsonString(s string) string {
	// MarshalNoEscape keeps '<', '>' and '&' literal, as layout documents
	// write them, so re-formatting reproduces the original bytes.
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		// s is always a plain Go string; Marshal only fails on unsupported
		// types or cyclic structures, neither of which applies here.
		panic(err)
	}
	return string(b)
}
