package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/go-json-experiment/json/jsontext"

	m "github.com/mouse-blink/jsonfmt/internal/model"
)

const indentUnit = "  "

// utf8BOM is ignored at the start of a document.
var utf8BOM = []byte("\xef\xbb\xbf")

// Canonicalize parses data as a single JSON document and renders it in the
// canonical layout: members sorted by name, two-space indentation, `"key" : value`
// separators, unescaped forward slashes and exactly one trailing newline.
//
// Canonicalize is deterministic and idempotent.
func Canonicalize(data []byte) ([]byte, error) {
	value, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return Encode(value)
}

// Parse decodes data into a value tree. A leading UTF-8 byte order mark is
// skipped. Number literals are kept verbatim, duplicate member names and
// invalid UTF-8 are rejected.
func Parse(data []byte) (m.Value, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if len(bytes.TrimSpace(data)) == 0 {
		return m.Value{}, m.NewParseError("no JSON value found", m.ErrEmptyInput)
	}

	dec := jsontext.NewDecoder(bytes.NewReader(data))

	value, err := readValue(dec)
	if err != nil {
		return m.Value{}, m.NewParseError("invalid JSON", err)
	}

	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = m.ErrTrailingData
		}

		return m.Value{}, m.NewParseError("invalid JSON", err)
	}

	return value, nil
}

func readValue(dec *jsontext.Decoder) (m.Value, error) {
	switch dec.PeekKind() {
	case '{':
		return readObject(dec)
	case '[':
		return readArray(dec)
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return m.Value{}, err
		}

		return m.Number(string(raw)), nil
	}

	tok, err := dec.ReadToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return m.Value{}, err
	}

	switch tok.Kind() {
	case 'n':
		return m.Null(), nil
	case 't', 'f':
		return m.Bool(tok.Bool()), nil
	case '"':
		return m.String(tok.String()), nil
	}

	return m.Value{}, fmt.Errorf("unexpected token %v", tok.Kind())
}

func readObject(dec *jsontext.Decoder) (m.Value, error) {
	if _, err := dec.ReadToken(); err != nil {
		return m.Value{}, err
	}

	members := []m.Member{}

	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return m.Value{}, err
		}

		// The token is voided by the next decoder call.
		name := tok.String()

		value, err := readValue(dec)
		if err != nil {
			return m.Value{}, err
		}

		members = append(members, m.Member{Name: name, Value: value})
	}

	if _, err := dec.ReadToken(); err != nil {
		return m.Value{}, err
	}

	return m.Object(members...), nil
}

func readArray(dec *jsontext.Decoder) (m.Value, error) {
	if _, err := dec.ReadToken(); err != nil {
		return m.Value{}, err
	}

	items := []m.Value{}

	for dec.PeekKind() != ']' {
		value, err := readValue(dec)
		if err != nil {
			return m.Value{}, err
		}

		items = append(items, value)
	}

	if _, err := dec.ReadToken(); err != nil {
		return m.Value{}, err
	}

	return m.Array(items...), nil
}

// Encode renders value in the canonical layout, including the trailing newline.
func Encode(value m.Value) ([]byte, error) {
	var buf bytes.Buffer

	if err := writeValue(&buf, value, 0); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, value m.Value, depth int) error {
	switch value.Kind {
	case m.KindNull:
		buf.WriteString("null")
	case m.KindBool:
		if value.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case m.KindNumber:
		buf.WriteString(value.Text)
	case m.KindString:
		return writeString(buf, value.Text)
	case m.KindArray:
		return writeArray(buf, value.Items, depth)
	case m.KindObject:
		return writeObject(buf, value.Members, depth)
	default:
		return m.NewParseError("cannot encode value", fmt.Errorf("unknown kind %s", value.Kind))
	}

	return nil
}

func writeArray(buf *bytes.Buffer, items []m.Value, depth int) error {
	if len(items) == 0 {
		buf.WriteString("[]")
		return nil
	}

	buf.WriteString("[\n")

	for i, item := range items {
		writeIndent(buf, depth+1)

		if err := writeValue(buf, item, depth+1); err != nil {
			return err
		}

		if i < len(items)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	writeIndent(buf, depth)
	buf.WriteByte(']')

	return nil
}

func writeObject(buf *bytes.Buffer, members []m.Member, depth int) error {
	if len(members) == 0 {
		buf.WriteString("{}")
		return nil
	}

	sorted := make([]m.Member, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	buf.WriteString("{\n")

	for i, member := range sorted {
		writeIndent(buf, depth+1)

		if err := writeString(buf, member.Name); err != nil {
			return err
		}

		buf.WriteString(" : ")

		if err := writeValue(buf, member.Value, depth+1); err != nil {
			return err
		}

		if i < len(sorted)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	writeIndent(buf, depth)
	buf.WriteByte('}')

	return nil
}

// writeString quotes s with minimal escaping; '/' is left as is.
func writeString(buf *bytes.Buffer, s string) error {
	quoted, err := jsontext.AppendQuote(buf.AvailableBuffer(), s)
	if err != nil {
		return m.NewParseError("cannot encode string", err)
	}

	buf.Write(quoted)

	return nil
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString(indentUnit)
	}
}
