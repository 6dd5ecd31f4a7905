package bin

import (
	// Go Internal Packages
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	// Local Packages
	errors "tx-codec/errors"
	models "tx-codec/models"
	utils "tx-codec/utils"
)

// Frame layout. A frame is an 8-byte head, the 4-byte tag followed by the
// big-endian body length, then the body: 46 fixed bytes and the description.
const (
	frameTag  = "YPBN"
	headSize  = 8
	fixedBody = 46
)

// Body offsets of the fixed part.
const (
	offTxID      = 0
	offTxType    = 8
	offFromUser  = 9
	offToUser    = 17
	offAmount    = 25
	offTimestamp = 33
	offStatus    = 41
	offDescLen   = 42
	offDesc      = 46
)

// Reader produces records from consecutive frames. A clean end of input at
// a frame boundary is exhaustion; truncation inside a frame is an error.
type Reader struct {
	reader    *bufio.Reader
	exhausted bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// read returns the next frame body after validating the head tag.
func (r *Reader) read() ([]byte, error) {
	if r.exhausted {
		return nil, io.EOF
	}
	head := make([]byte, headSize)
	if _, err := io.ReadFull(r.reader, head); err != nil {
		if err == io.EOF {
			r.exhausted = true
			return nil, io.EOF
		}
		return nil, errors.ReadErr("failed to read frame head", err)
	}
	if string(head[:4]) != frameTag {
		return nil, errors.ReadErr(fmt.Sprintf("bad frame tag %q", head[:4]), nil)
	}
	body := make([]byte, binary.BigEndian.Uint32(head[4:]))
	if _, err := io.ReadFull(r.reader, body); err != nil {
		return nil, errors.ReadErr("failed to read frame body", err)
	}
	return body, nil
}

// ProduceRecord reads one frame and parses its body.
func (r *Reader) ProduceRecord() (models.Record, error) {
	body, err := r.read()
	if err == io.EOF {
		return models.Record{}, io.EOF
	}
	if err != nil {
		return models.Record{}, errors.ProduceErr("failed to read record", err)
	}
	rec, err := parseBody(body)
	if err != nil {
		return models.Record{}, errors.ProduceErr("failed to parse record", err)
	}
	return rec, nil
}

// parseBody cuts the fixed-offset slices out of body and parses each into
// its field value. The description is everything past the fixed part; the
// stored description length at [42:46) is not re-derived from it.
func parseBody(body []byte) (models.Record, error) {
	cuts := []struct {
		field models.Field
		from  int
		to    int // -1 extends to the end of the body
	}{
		{models.FieldTxID, offTxID, offTxType},
		{models.FieldTxType, offTxType, offFromUser},
		{models.FieldFromUser, offFromUser, offToUser},
		{models.FieldToUser, offToUser, offAmount},
		{models.FieldAmount, offAmount, offTimestamp},
		{models.FieldTimestamp, offTimestamp, offStatus},
		{models.FieldStatus, offStatus, offDescLen},
		{models.FieldDescription, offDesc, -1},
	}

	fields := make([]models.FieldValue, 0, len(cuts))
	for _, c := range cuts {
		to := c.to
		if to < 0 {
			to = len(body)
		}
		if to > len(body) || c.from > to {
			return models.Record{}, errors.RecordParseErr(
				fmt.Sprintf("field %s out of range at offset %d", c.field, c.from), nil)
		}
		fv, err := parseField(c.field, body[c.from:to])
		if err != nil {
			return models.Record{}, errors.RecordParseErr(fmt.Sprintf("failed to parse field %s", c.field), err)
		}
		fields = append(fields, fv)
	}
	return models.NewRecord(fields)
}

// parseField converts one raw slice into its typed value. Numeric fields
// are 8 big-endian bytes, enums one byte, the description UTF-8 text.
func parseField(f models.Field, raw []byte) (models.FieldValue, error) {
	switch f {
	case models.FieldTxID, models.FieldFromUser, models.FieldToUser,
		models.FieldAmount, models.FieldTimestamp:
		if len(raw) != 8 {
			return models.FieldValue{}, errors.FieldParseErr(
				fmt.Sprintf("failed to parse %s: want 8 bytes, got %d", f.Attr(), len(raw)), nil)
		}
		return models.FieldValue{Field: f, Uint: binary.BigEndian.Uint64(raw)}, nil
	case models.FieldTxType:
		if len(raw) != 1 {
			return models.FieldValue{}, errors.FieldParseErr(
				fmt.Sprintf("failed to parse tx_type: want 1 byte, got %d", len(raw)), nil)
		}
		t, err := models.TxTypeFromByte(raw[0])
		if err != nil {
			return models.FieldValue{}, errors.FieldParseErr("failed to parse tx_type", err)
		}
		return models.FieldValue{Field: f, TxType: t}, nil
	case models.FieldStatus:
		if len(raw) != 1 {
			return models.FieldValue{}, errors.FieldParseErr(
				fmt.Sprintf("failed to parse status: want 1 byte, got %d", len(raw)), nil)
		}
		st, err := models.StatusFromByte(raw[0])
		if err != nil {
			return models.FieldValue{}, errors.FieldParseErr("failed to parse status", err)
		}
		return models.FieldValue{Field: f, Status: st}, nil
	case models.FieldDescription:
		if !utf8.Valid(raw) {
			return models.FieldValue{}, errors.FieldParseErr("failed to parse description: invalid utf-8", nil)
		}
		return models.FieldValue{Field: f, Text: string(raw)}, nil
	}
	return models.FieldValue{}, errors.FieldParseErr(fmt.Sprintf("unknown field: %s", f), nil)
}

// Serializer renders records as frames.
type Serializer struct{}

func NewSerializer() *Serializer { return &Serializer{} }

// Serialize emits the whole frame: tag, body length, fixed body, then the
// description bytes.
func (s *Serializer) Serialize(rec models.Record) ([]byte, error) {
	descLen := len(rec.Description)
	if uint64(descLen) > uint64(^uint32(0))-fixedBody {
		return nil, errors.SerializeErr(fmt.Sprintf("description too long: %d bytes", descLen), nil)
	}
	buf := make([]byte, 0, headSize+fixedBody+descLen)
	buf = append(buf, frameTag...)
	buf = binary.BigEndian.AppendUint32(buf, fixedBody+uint32(descLen))
	buf = binary.BigEndian.AppendUint64(buf, rec.TxID)
	buf = append(buf, rec.TxType.Byte())
	buf = binary.BigEndian.AppendUint64(buf, rec.FromUser)
	buf = binary.BigEndian.AppendUint64(buf, rec.ToUser)
	buf = binary.BigEndian.AppendUint64(buf, rec.Amount)
	buf = binary.BigEndian.AppendUint64(buf, rec.Timestamp)
	buf = append(buf, rec.Status.Byte())
	buf = binary.BigEndian.AppendUint32(buf, uint32(descLen))
	buf = append(buf, rec.Description...)
	return buf, nil
}

// Writer emits frames to w unmodified.
type Writer struct {
	writer io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// WriteHeader is a no-op; the encoding has no leading header.
func (w *Writer) WriteHeader() error { return nil }

func (w *Writer) Write(data []byte) error {
	if err := utils.WriteFull(w.writer, data); err != nil {
		return errors.WriteErr("failed to write frame", err)
	}
	return nil
}
