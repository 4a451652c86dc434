// Package frontmatter splits raw document text into a metadata mapping and a
// raw body. The metadata block is bounded by a line consisting solely of three
// hyphens, appearing once to open and once to close the block, and contains
// one `key: value` header per line.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Delimiter is the marker line bounding a metadata block.
const Delimiter = "---"

// ErrMalformed indicates an opening delimiter with no matching closing
// delimiter.
var ErrMalformed = errors.New("front matter opened but never closed")

// Parse splits data into its metadata mapping and body.
//
// Contract:
//   - Input starting with the delimiter line: the region up to the second
//     delimiter line is decoded as key/value headers; everything after the
//     closing delimiter line is the body, returned unmodified.
//   - No opening delimiter: empty metadata, the entire input is the body.
//   - Opening delimiter without a closing one: ErrMalformed.
//
// Parse is a pure function; it performs no I/O and keeps no state.
func Parse(data []byte) (map[string]string, string, error) {
	meta := map[string]string{}

	if !opensWithDelimiter(data) {
		return meta, string(data), nil
	}

	block, body, err := split(data)
	if err != nil {
		return nil, "", err
	}

	// yaml.v3 rejects duplicate keys, which enforces header uniqueness.
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil, "", fmt.Errorf("invalid front matter block: %w", err)
	}
	if meta == nil {
		meta = map[string]string{}
	}

	return meta, body, nil
}

// Serialize is the inverse of Parse: it renders the metadata block followed by
// the body. Empty metadata serializes to the bare body with no delimiters, so
// parsing a serialized document always yields the original mapping and body.
func Serialize(meta map[string]string, body string) ([]byte, error) {
	var buf bytes.Buffer
	if len(meta) > 0 {
		buf.WriteString(Delimiter + "\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(meta); err != nil {
			return nil, err
		}
		encoder.Close()
		buf.WriteString(Delimiter + "\n")
	}
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// opensWithDelimiter reports whether the first line of data is exactly the
// delimiter. A bare "---" prefix is not enough: "----" or "--- title" lines
// are body text, not block markers.
func opensWithDelimiter(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return isDelimiterLine(line)
}

func isDelimiterLine(line []byte) bool {
	return string(bytes.TrimSuffix(line, []byte("\r"))) == Delimiter
}

// split scans past the opening delimiter line for the closing one, returning
// the raw block between them and the body after. The scan is line-exact so an
// embedded "---" inside a header value or a longer dash run never terminates
// the block early.
func split(data []byte) (block []byte, body string, err error) {
	_, rest, found := bytes.Cut(data, []byte("\n"))
	if !found {
		// The whole input is the opening delimiter line.
		return nil, "", ErrMalformed
	}

	offset := 0
	for offset <= len(rest) {
		var line []byte
		next := bytes.IndexByte(rest[offset:], '\n')
		if next < 0 {
			line = rest[offset:]
		} else {
			line = rest[offset : offset+next]
		}

		if isDelimiterLine(line) {
			block = rest[:offset]
			if next < 0 {
				return block, "", nil
			}
			return block, string(rest[offset+next+1:]), nil
		}

		if next < 0 {
			break
		}
		offset += next + 1
	}

	return nil, "", ErrMalformed
}
