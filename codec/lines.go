// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single line; weight rows for large N get long.
const maxLineBytes = 64 << 20

// lineReader yields lines with 1-based numbers and no trailing "\r".
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the next line, or io.EOF / the scanner error.
func (lr *lineReader) next() (string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "line %d", lr.line+1)
		}
		return "", io.EOF
	}
	lr.line++

	return strings.TrimSuffix(lr.sc.Text(), "\r"), nil
}

// nextNonBlank skips lines for which blank reports true.
func (lr *lineReader) nextNonBlank(blank func(string) bool) (string, error) {
	for {
		s, err := lr.next()
		if err != nil {
			return "", err
		}
		if !blank(s) {
			return s, nil
		}
	}
}

// malformed wraps ErrMalformedRecord with the current line number.
func (lr *lineReader) malformed(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedRecord, "line %d: "+format, append([]any{lr.line}, args...)...)
}

// unexpectedEOF reports input that ended before the declared content.
func (lr *lineReader) unexpectedEOF(what string) error {
	return errors.Wrapf(ErrMalformedRecord, "line %d: unexpected end of input while reading %s", lr.line, what)
}

// isBlank treats whitespace-only lines as blank.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// headerInt reads the next non-blank line and parses its leading integer;
// trailing text such as "(dimension of the image vectors)" is ignored.
func (lr *lineReader) headerInt(what string) (int, error) {
	s, err := lr.nextNonBlank(isBlank)
	if err == io.EOF {
		return 0, lr.unexpectedEOF(what)
	}
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(s)
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, lr.malformed("%s: %q is not an integer", what, fields[0])
	}

	return v, nil
}
