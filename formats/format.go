package formats

import (
	// Go Internal Packages
	"fmt"
	"io"

	// Local Packages
	errors "tx-codec/errors"
	bin "tx-codec/formats/bin"
	csv "tx-codec/formats/csv"
	txt "tx-codec/formats/txt"
	models "tx-codec/models"
)

// Format identifies one of the supported encodings. The set is closed;
// adding an encoding means extending the switches below.
type Format uint8

const (
	FormatCSV Format = iota
	FormatTXT
	FormatBIN
)

// Names accepted by ParseFormat, in declaration order.
var Names = []string{"csv", "txt", "bin"}

// ParseFormat maps a format name to its Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "txt":
		return FormatTXT, nil
	case "bin":
		return FormatBIN, nil
	}
	return 0, errors.BuildErr(fmt.Sprintf("unsupported format %q", s), nil)
}

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTXT:
		return "txt"
	case FormatBIN:
		return "bin"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// CSVFieldOrder is the column order used by built CSV serializers and
// writers. Readers do not depend on it; they follow the header they find.
var CSVFieldOrder = []models.Field{
	models.FieldTxID,
	models.FieldTxType,
	models.FieldFromUser,
	models.FieldToUser,
	models.FieldAmount,
	models.FieldTimestamp,
	models.FieldStatus,
	models.FieldDescription,
}

// NewReader builds a record producer for the given format over r.
func NewReader(r io.Reader, f Format) (models.RecordProducer, error) {
	switch f {
	case FormatCSV:
		cr, err := csv.NewReader(r, csv.DefaultSeparator)
		if err != nil {
			return nil, errors.BuildErr("failed to create csv reader", err)
		}
		return cr, nil
	case FormatTXT:
		return txt.NewReader(r), nil
	case FormatBIN:
		return bin.NewReader(r), nil
	}
	return nil, errors.BuildErr(fmt.Sprintf("unsupported format %s", f), nil)
}

// NewSerializer builds a record serializer for the given format.
func NewSerializer(f Format) (models.RecordSerializer, error) {
	switch f {
	case FormatCSV:
		return csv.NewSerializer(CSVFieldOrder, csv.DefaultSeparator), nil
	case FormatTXT:
		return txt.NewSerializer(), nil
	case FormatBIN:
		return bin.NewSerializer(), nil
	}
	return nil, errors.BuildErr(fmt.Sprintf("unsupported format %s", f), nil)
}

// NewWriter builds a record writer for the given format over w.
func NewWriter(w io.Writer, f Format) (models.RecordWriter, error) {
	switch f {
	case FormatCSV:
		return csv.NewWriter(w, CSVFieldOrder, csv.DefaultSeparator), nil
	case FormatTXT:
		return txt.NewWriter(w), nil
	case FormatBIN:
		return bin.NewWriter(w), nil
	}
	return nil, errors.BuildErr(fmt.Sprintf("unsupported format %s", f), nil)
}
