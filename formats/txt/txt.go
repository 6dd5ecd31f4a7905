package txt

import (
	// Go Internal Packages
	"bufio"
	"fmt"
	"io"
	"strings"

	// Local Packages
	errors "tx-codec/errors"
	models "tx-codec/models"
	utils "tx-codec/utils"
)

// Reader produces records from runs of "NAME: value" lines. A blank line
// ends the current run; lines starting with '#' are comments and invisible
// to the accumulation, though they still advance the line count.
type Reader struct {
	reader    *bufio.Reader
	line      uint64
	exhausted bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// read returns the next non-comment line without its trailing newline.
// Blank lines are returned as empty strings; io.EOF signals exhaustion.
func (r *Reader) read() (string, error) {
	if r.exhausted {
		return "", io.EOF
	}
	for {
		line, err := r.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.ReadErr(fmt.Sprintf("failed to read line %d", r.line), err)
		}
		if line == "" {
			r.exhausted = true
			return "", io.EOF
		}
		r.line++
		line = strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
}

// ProduceRecord accumulates field lines until a blank line or the end of
// the source, then assembles them. A run with no field lines means the
// stream is exhausted.
func (r *Reader) ProduceRecord() (models.Record, error) {
	var fields []models.FieldValue
	for {
		line, err := r.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Record{}, errors.ProduceErr(fmt.Sprintf("failed to produce record. line %d", r.line), err)
		}
		if line == "" {
			break
		}
		fv, err := parseFieldLine(line)
		if err != nil {
			return models.Record{}, errors.ProduceErr(fmt.Sprintf("failed to produce record. line %d", r.line), err)
		}
		fields = append(fields, fv)
	}
	if len(fields) == 0 {
		return models.Record{}, io.EOF
	}
	rec, err := models.NewRecord(fields)
	if err != nil {
		return models.Record{}, errors.ProduceErr(fmt.Sprintf("couldn't parse record. near line %d", r.line), err)
	}
	return rec, nil
}

// parseFieldLine splits one "NAME: value" line at the first colon. Exactly
// one space after the colon is stripped; any further whitespace belongs to
// the value.
func parseFieldLine(line string) (models.FieldValue, error) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return models.FieldValue{}, errors.FieldParseErr(fmt.Sprintf("no delimiter found in %q", line), nil)
	}
	name := line[:idx]
	value := strings.TrimPrefix(line[idx+1:], " ")
	return models.ParseField(name, value)
}

// Serializer renders records as "NAME: value" lines in a fixed order, the
// status line carrying the run-terminating newline.
type Serializer struct{}

func NewSerializer() *Serializer { return &Serializer{} }

func (s *Serializer) Serialize(rec models.Record) ([]byte, error) {
	lines := []string{
		fmt.Sprintf("%s: %d", models.FieldTxID, rec.TxID),
		fmt.Sprintf("%s: %d", models.FieldAmount, rec.Amount),
		fmt.Sprintf("%s: %d", models.FieldTimestamp, rec.Timestamp),
		fmt.Sprintf("%s: %s", models.FieldDescription, rec.Description),
		fmt.Sprintf("%s: %s", models.FieldTxType, rec.TxType),
		fmt.Sprintf("%s: %d", models.FieldFromUser, rec.FromUser),
		fmt.Sprintf("%s: %d", models.FieldToUser, rec.ToUser),
		fmt.Sprintf("%s: %s\n", models.FieldStatus, rec.Status),
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// Writer appends serialized runs to w, separating records with a blank line.
type Writer struct {
	writer io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// WriteHeader is a no-op; the encoding has no header.
func (w *Writer) WriteHeader() error { return nil }

func (w *Writer) Write(data []byte) error {
	if err := utils.WriteFull(w.writer, append(data, '\n')); err != nil {
		return errors.WriteErr("failed to write record", err)
	}
	return nil
}
