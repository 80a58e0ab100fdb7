package als

import (
	"strconv"
	"strings"
)

// Parse parses ALS or CTX wire text into a Document using the default
// resource limits.
func Parse(text string) (*Document, error) {
	return ParseWithLimits(text, DefaultLimits())
}

// ParseWithLimits parses ALS or CTX wire text into a Document, enforcing
// the given resource limits on any Range operator it encounters.
func ParseWithLimits(text string, limits Limits) (*Document, error) {
	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	// A trailing newline produces one final empty element; drop it so line
	// counting below matches the grammar exactly.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	idx := 0
	version := CurrentVersion
	format := FormatALS

	if idx < len(lines) && strings.HasPrefix(lines[idx], "!") {
		header := lines[idx]
		switch {
		case header == "!ctx":
			format = FormatCTX
		case strings.HasPrefix(header, "!v"):
			v, err := strconv.Atoi(header[2:])
			if err != nil {
				return nil, &VersionMismatchError{Got: header}
			}
			if v != CurrentVersion {
				return nil, &VersionMismatchError{Got: header}
			}
			version = v
		default:
			return nil, &VersionMismatchError{Got: header}
		}
		idx++
	}

	if format == FormatCTX {
		return parseCTXBody(lines[idx:], version, limits)
	}
	return parseALSBody(lines[idx:], version, limits)
}

func parseALSBody(lines []string, version int, limits Limits) (*Document, error) {
	idx := 0
	dicts := map[string][]string{}
	seenDictNames := map[string]bool{}
	for idx < len(lines) && strings.HasPrefix(lines[idx], "$") {
		name, entries, err := parseDictLine(lines[idx])
		if err != nil {
			return nil, err
		}
		if seenDictNames[name] {
			return nil, &SyntaxError{Message: "duplicate dictionary name " + name}
		}
		seenDictNames[name] = true
		dicts[name] = entries
		idx++
	}

	if idx >= len(lines) || !strings.HasPrefix(lines[idx], "#") {
		return nil, &SyntaxError{Message: "expected schema line"}
	}
	schema := parseSchemaLine(lines[idx])
	idx++

	var streamsLine string
	if idx < len(lines) {
		streamsLine = lines[idx]
		idx++
	}

	var rawSegments []string
	if len(schema) == 0 {
		rawSegments = nil
	} else {
		rawSegments = splitUnescaped(streamsLine, '|')
		for i, seg := range rawSegments {
			rawSegments[i] = strings.TrimSpace(seg)
		}
	}
	if len(rawSegments) != len(schema) {
		return nil, &ColumnMismatchError{Message: "expected " + strconv.Itoa(len(schema)) + " column streams, found " + strconv.Itoa(len(rawSegments))}
	}

	streams := make([]ColumnStream, len(schema))
	for i, seg := range rawSegments {
		ops, err := parseStreamSegment(seg)
		if err != nil {
			return nil, err
		}
		streams[i] = ColumnStream{Operators: ops}
	}

	doc := &Document{
		Version:      version,
		Dictionaries: dicts,
		Schema:       schema,
		Streams:      streams,
		Format:       FormatALS,
		Limits:       limits,
	}
	if len(streams) > 0 {
		n, err := ExpandStreamLen(streams[0], doc.Dictionary(), limits.MaxRangeExpansion)
		if err != nil {
			return nil, err
		}
		doc.RowCount = n
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseDictLine(line string) (string, []string, error) {
	colonIdx := findUnescaped(line, ':')
	if colonIdx < 0 {
		return "", nil, &SyntaxError{Message: "malformed dictionary line " + line}
	}
	name := line[1:colonIdx]
	rest := line[colonIdx+1:]
	if rest == "" {
		return name, nil, nil
	}
	// Entries are kept in their wire (escaped) form, matching Raw operator
	// payloads; unescaping happens once, at expansion time, in
	// decodeRawToken.
	entries := splitUnescaped(rest, '|')
	return name, entries, nil
}

func parseSchemaLine(line string) []string {
	trimmed := strings.TrimPrefix(line, "#")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, " #")
	return parts
}

func parseStreamSegment(seg string) ([]Operator, error) {
	fields := splitFields(seg)
	ops := make([]Operator, len(fields))
	for i, f := range fields {
		op, err := parseElement(f)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

func parseCTXBody(lines []string, version int, limits Limits) (*Document, error) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "#") {
		return nil, &SyntaxError{Message: "expected schema line"}
	}
	schema := parseSchemaLine(lines[0])
	rowLines := lines[1:]

	streams := make([]ColumnStream, len(schema))
	for ci := range streams {
		streams[ci] = ColumnStream{Operators: make([]Operator, 0, len(rowLines))}
	}

	for _, rl := range rowLines {
		fields := splitFields(rl)
		if len(fields) != len(schema) {
			return nil, &ColumnMismatchError{Message: "ctx row has " + strconv.Itoa(len(fields)) + " fields, expected " + strconv.Itoa(len(schema))}
		}
		for ci, f := range fields {
			streams[ci].Operators = append(streams[ci].Operators, Raw(f))
		}
	}

	return &Document{
		Version:      version,
		Dictionaries: map[string][]string{},
		Schema:       schema,
		Streams:      streams,
		Format:       FormatCTX,
		RowCount:     len(rowLines),
		Limits:       limits,
	}, nil
}
