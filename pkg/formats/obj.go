// Package formats provides parsers for wireframe model file formats.
// OBJ (Wavefront) parser for vertex/face geometry.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/objview/pkg/geometry"
)

// OBJ format errors.
var (
	ErrFailedToOpen  = errors.New("failed to open obj source")
	ErrIncorrectData = errors.New("incorrect vertex data")
)

// OBJExtension is the accepted file suffix, matched case-sensitively.
const OBJExtension = ".obj"

// minOBJPathLen is the shortest path that can carry the suffix plus at least
// one name character ("a.obj").
const minOBJPathLen = 5

// HasOBJExtension reports whether path names an OBJ file. The check is
// case-sensitive: "model.OBJ" is rejected. No trimming or normalization is
// applied to the path.
func HasOBJExtension(path string) bool {
	return len(path) >= minOBJPathLen && strings.HasSuffix(path, OBJExtension)
}

// ParseOBJFile opens path and parses it into buf. The file handle is closed
// on every exit path. On ErrIncorrectData, buf holds whatever geometry was
// read before the offending line (see ParseOBJ).
func ParseOBJFile(path string, buf *geometry.Buffer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToOpen, err)
	}
	defer file.Close()

	return ParseOBJ(file, buf)
}

// LoadOBJ opens and parses an OBJ file into a fresh buffer. The returned
// buffer is never nil, so partial geometry survives a failed parse.
func LoadOBJ(path string) (*geometry.Buffer, error) {
	buf := &geometry.Buffer{}
	return buf, ParseOBJFile(path, buf)
}

// ParseOBJ reads OBJ text from r into buf.
//
// Recognized directives are "v" (vertex position, exactly three float
// components) and "f" (face, one or more 1-based vertex indices). Blank
// lines, comments and every other directive (vn, vt, g, usemtl, ...) are
// skipped. Face lines are lenient: tokens that do not parse or reference
// index 0 or below are dropped, and a face keeping at least two indices is
// expanded into its closed cycle of edges. Vertex lines are strict: the
// first malformed one stops the parse with ErrIncorrectData, leaving the
// geometry read so far in buf. Callers that see an error must discard the
// buffer contents themselves.
//
// On success the buffer is normalized (geometry.Buffer.Normalize) before
// returning.
func ParseOBJ(r io.Reader, buf *geometry.Buffer) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		switch {
		case strings.HasPrefix(line, "v "):
			if !parseVertex(line, buf) {
				return fmt.Errorf("%w: line %d: %q", ErrIncorrectData, lineNo, line)
			}
		case strings.HasPrefix(line, "f "):
			parseFace(line[2:], buf)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToOpen, err)
	}

	buf.Normalize()
	return nil
}

// parseVertex appends the line's coordinate triplet to buf. The line must
// consist of the "v" marker followed by exactly three float tokens; anything
// else (missing or extra tokens, non-numeric values) fails the parse.
func parseVertex(line string, buf *geometry.Buffer) bool {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "v" {
		return false
	}

	var coords [3]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false
		}
		coords[i] = v
	}

	buf.Coordinates = append(buf.Coordinates, coords[0], coords[1], coords[2])
	return true
}

// parseFace expands a face definition into closed-cycle edges.
//
// Each whitespace-separated token contributes its leading integer, so the
// common "v/vt/vn" token form resolves to its vertex index. Tokens without a
// leading integer and indices at or below zero are dropped without error;
// face leniency is deliberate and asymmetric with the strict vertex rule.
// Faces keeping fewer than two indices emit nothing. N surviving indices
// emit N edges: each adjacent pair plus the closing pair (last, first).
func parseFace(rest string, buf *geometry.Buffer) {
	var face []int
	for _, tok := range strings.Fields(rest) {
		idx, ok := leadingInt(tok)
		if !ok || idx <= 0 {
			continue
		}
		face = append(face, idx-1)
	}

	if len(face) < 2 {
		return
	}

	for i := range face {
		next := (i + 1) % len(face)
		buf.Edges = append(buf.Edges, face[i], face[next])
	}
}

// leadingInt parses an optional sign and leading digit run, ignoring any
// trailing characters ("12/5/3" yields 12, "-7" yields -7, "x2" fails).
func leadingInt(s string) (int, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
