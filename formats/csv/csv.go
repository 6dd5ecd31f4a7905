package csv

import (
	// Go Internal Packages
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	// Local Packages
	errors "tx-codec/errors"
	models "tx-codec/models"
	utils "tx-codec/utils"
)

// DefaultSeparator is the column separator used by the built codecs.
const DefaultSeparator = ","

// Reader produces records from separator-joined lines. The header line,
// consumed at construction, fixes which column carries which field; data
// lines are zipped against that order. Values are taken verbatim, so a
// separator inside a value splits it.
type Reader struct {
	reader    *bufio.Reader
	order     []string
	separator string
	line      uint64
	exhausted bool
}

// NewReader wraps r and consumes its header line to learn the column order.
func NewReader(r io.Reader, separator string) (*Reader, error) {
	cr := &Reader{reader: bufio.NewReader(r), separator: separator}
	header, err := cr.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.ReadErr("couldn't read header", err)
	}
	if header == "" {
		cr.exhausted = true
		return cr, nil
	}
	cr.order = strings.Split(strings.TrimSuffix(header, "\n"), separator)
	return cr, nil
}

// read returns the next data line without its trailing newline, or io.EOF
// once the source is exhausted.
func (r *Reader) read() (string, error) {
	if r.exhausted {
		return "", io.EOF
	}
	line, err := r.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.ReadErr(fmt.Sprintf("failed to read line %d", r.line), err)
	}
	if line == "" {
		r.exhausted = true
		return "", io.EOF
	}
	r.line++
	return strings.TrimSuffix(line, "\n"), nil
}

// ProduceRecord reads one line and zips its columns against the header
// order. Columns beyond the header's width are ignored; a line with fewer
// columns than the header fails naming the first uncovered field.
func (r *Reader) ProduceRecord() (models.Record, error) {
	payload, err := r.read()
	if err == io.EOF {
		return models.Record{}, io.EOF
	}
	if err != nil {
		return models.Record{}, errors.ProduceErr(fmt.Sprintf("failed to produce record. line %d", r.line), err)
	}

	values := strings.Split(payload, r.separator)
	fields := make([]models.FieldValue, 0, len(r.order))
	for i, name := range r.order {
		if i >= len(values) {
			return models.Record{}, errors.ProduceErr(fmt.Sprintf("missing field %s. near line %d", name, r.line), nil)
		}
		fv, err := models.ParseField(name, values[i])
		if err != nil {
			return models.Record{}, errors.ProduceErr(fmt.Sprintf("failed to produce record. line %d", r.line), err)
		}
		fields = append(fields, fv)
	}

	rec, err := models.NewRecord(fields)
	if err != nil {
		return models.Record{}, errors.ProduceErr(fmt.Sprintf("couldn't parse record. near line %d", r.line), err)
	}
	return rec, nil
}

// Serializer renders records as separator-joined lines in a fixed field
// order. Values are written verbatim, without quoting or escaping.
type Serializer struct {
	fields    []models.Field
	separator string
}

func NewSerializer(fields []models.Field, separator string) *Serializer {
	return &Serializer{fields: fields, separator: separator}
}

// Serialize renders rec's attributes in the serializer's field order.
func (s *Serializer) Serialize(rec models.Record) ([]byte, error) {
	cols := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		switch f {
		case models.FieldTxID:
			cols = append(cols, strconv.FormatUint(rec.TxID, 10))
		case models.FieldTxType:
			cols = append(cols, rec.TxType.String())
		case models.FieldFromUser:
			cols = append(cols, strconv.FormatUint(rec.FromUser, 10))
		case models.FieldToUser:
			cols = append(cols, strconv.FormatUint(rec.ToUser, 10))
		case models.FieldAmount:
			cols = append(cols, strconv.FormatUint(rec.Amount, 10))
		case models.FieldTimestamp:
			cols = append(cols, strconv.FormatUint(rec.Timestamp, 10))
		case models.FieldStatus:
			cols = append(cols, rec.Status.String())
		case models.FieldDescription:
			cols = append(cols, rec.Description)
		default:
			return nil, errors.SerializeErr(fmt.Sprintf("unknown field %s", f), nil)
		}
	}
	return []byte(strings.Join(cols, s.separator)), nil
}

// Writer appends newline-terminated lines to w, starting with a header line
// naming the fields in the writer's order.
type Writer struct {
	writer    io.Writer
	fields    []models.Field
	separator string
}

func NewWriter(w io.Writer, fields []models.Field, separator string) *Writer {
	return &Writer{writer: w, fields: fields, separator: separator}
}

// WriteHeader emits the field-name header line.
func (w *Writer) WriteHeader() error {
	names := make([]string, len(w.fields))
	for i, f := range w.fields {
		names[i] = string(f)
	}
	header := strings.Join(names, w.separator) + "\n"
	if err := utils.WriteFull(w.writer, []byte(header)); err != nil {
		return errors.WriteErr("failed to write header", err)
	}
	return nil
}

// Write emits one serialized record followed by a newline.
func (w *Writer) Write(data []byte) error {
	if err := utils.WriteFull(w.writer, append(data, '\n')); err != nil {
		return errors.WriteErr("failed to write record", err)
	}
	return nil
}
