package gen

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Generated content is spliced into file templates between marker lines.
// Marker lines are preserved so splicing an already spliced file with the
// same content is a no-op.
const (
	beginMarker = "[[[C2E]]]"
	endMarker   = "[[[END]]]"
)

// Splice replaces every region between a begin and an end marker line in
// template with generated, keeping the marker lines. It fails if markers are
// missing or unbalanced.
func Splice(template []byte, generated string) ([]byte, error) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(bytes.NewReader(template))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	inRegion := false
	regions := 0
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, beginMarker):
			if inRegion {
				return nil, fmt.Errorf("nested %s marker", beginMarker)
			}
			inRegion = true
			regions++
			out.WriteString(line)
			out.WriteByte('\n')
			out.WriteString(generated)
			if !strings.HasSuffix(generated, "\n") {
				out.WriteByte('\n')
			}

		case strings.Contains(line, endMarker):
			if !inRegion {
				return nil, fmt.Errorf("%s marker without preceding %s", endMarker, beginMarker)
			}
			inRegion = false
			out.WriteString(line)
			out.WriteByte('\n')

		case inRegion:
			// Old generated content, dropped.

		default:
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	if inRegion {
		return nil, fmt.Errorf("unterminated %s region", beginMarker)
	}
	if regions == 0 {
		return nil, fmt.Errorf("template has no %s region", beginMarker)
	}
	return out.Bytes(), nil
}
