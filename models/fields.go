package models

import (
	// Go Internal Packages
	"fmt"
	"strconv"

	// Local Packages
	errors "tx-codec/errors"
)

// Field names one record attribute. The constants below are the only field
// identities; codecs compare against these, never against literal strings.
type Field string

const (
	FieldTxID        Field = "TX_ID"
	FieldTxType      Field = "TX_TYPE"
	FieldStatus      Field = "STATUS"
	FieldFromUser    Field = "FROM_USER_ID"
	FieldToUser      Field = "TO_USER_ID"
	FieldTimestamp   Field = "TIMESTAMP"
	FieldAmount      Field = "AMOUNT"
	FieldDescription Field = "DESCRIPTION"
)

// Attr is the lowercase attribute name used in diagnostics.
func (f Field) Attr() string {
	switch f {
	case FieldTxID:
		return "tx_id"
	case FieldTxType:
		return "tx_type"
	case FieldStatus:
		return "status"
	case FieldFromUser:
		return "from_user"
	case FieldToUser:
		return "to_user"
	case FieldTimestamp:
		return "timestamp"
	case FieldAmount:
		return "amount"
	case FieldDescription:
		return "description"
	}
	return string(f)
}

// FieldValue is one parsed record attribute. The Field tag selects which
// payload slot is meaningful. Values exist only between parsing a raw field
// and folding it into a Record.
type FieldValue struct {
	Field  Field
	Uint   uint64
	Text   string
	TxType TxType
	Status Status
}

// ParseField converts one textual field into its typed value. Unknown names
// are an error, never silently dropped.
func ParseField(name, value string) (FieldValue, error) {
	f := Field(name)
	switch f {
	case FieldTxID, FieldFromUser, FieldToUser, FieldTimestamp, FieldAmount:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return FieldValue{}, errors.FieldParseErr("failed to parse "+f.Attr(), err)
		}
		return FieldValue{Field: f, Uint: n}, nil
	case FieldTxType:
		t, err := ParseTxType(value)
		if err != nil {
			return FieldValue{}, errors.FieldParseErr("failed to parse tx_type", err)
		}
		return FieldValue{Field: f, TxType: t}, nil
	case FieldStatus:
		s, err := ParseStatus(value)
		if err != nil {
			return FieldValue{}, errors.FieldParseErr("failed to parse status", err)
		}
		return FieldValue{Field: f, Status: s}, nil
	case FieldDescription:
		return FieldValue{Field: f, Text: value}, nil
	}
	return FieldValue{}, errors.FieldParseErr(fmt.Sprintf("unknown field: %s", name), nil)
}
