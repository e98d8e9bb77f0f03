package capture

import (
	"bufio"
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/tree"
)

const maxRecordSize = 64 << 20

// Record is one line of a capture file.
type Record struct {
	Line   int
	Update *tree.TreeUpdate
}

// Reader parses capture records from a stream.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxRecordSize)
	return &Reader{sc: sc}
}

// Next returns the next record, or io.EOF when the stream is exhausted.
// Blank lines are skipped.
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		r.line++
		data := bytes.TrimSpace(r.sc.Bytes())
		if len(data) == 0 {
			continue
		}
		u := new(tree.TreeUpdate)
		if err := json.Unmarshal(data, u); err != nil {
			e := errors.InvalidData(errors.PhaseParse, []string{"record"}, "malformed tree update on line "+strconv.Itoa(r.line))
			e.Cause = err
			return Record{}, e
		}
		return Record{Line: r.line, Update: u}, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, errors.Wrap(errors.PhaseParse, errors.KindIO, err, "read capture")
	}
	return Record{}, io.EOF
}

// ReadAll returns every remaining record.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// ReadFile parses a whole capture file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NotFound(errors.PhaseParse, "capture file", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindIO, err, "open "+path)
	}
	defer f.Close()
	return NewReader(f).ReadAll()
}
