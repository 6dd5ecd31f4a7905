package models

import (
	// Go Internal Packages
	"fmt"

	// Local Packages
	errors "tx-codec/errors"
)

// Record is the canonical transaction entity every encoding converts through.
// It is a plain comparable value; two records are equal when all eight
// attributes are.
type Record struct {
	TxID        uint64
	TxType      TxType
	FromUser    uint64
	ToUser      uint64
	Amount      uint64
	Timestamp   uint64
	Status      Status
	Description string
}

// NewRecord assembles a Record from parsed field values. A duplicate field
// overwrites the earlier occurrence. Assembly fails naming the first absent
// attribute when the set is incomplete.
func NewRecord(fields []FieldValue) (Record, error) {
	var rec Record
	var seen struct {
		txID, txType, fromUser, toUser, amount, timestamp, status, description bool
	}
	for _, fv := range fields {
		switch fv.Field {
		case FieldTxID:
			rec.TxID, seen.txID = fv.Uint, true
		case FieldTxType:
			rec.TxType, seen.txType = fv.TxType, true
		case FieldFromUser:
			rec.FromUser, seen.fromUser = fv.Uint, true
		case FieldToUser:
			rec.ToUser, seen.toUser = fv.Uint, true
		case FieldAmount:
			rec.Amount, seen.amount = fv.Uint, true
		case FieldTimestamp:
			rec.Timestamp, seen.timestamp = fv.Uint, true
		case FieldStatus:
			rec.Status, seen.status = fv.Status, true
		case FieldDescription:
			rec.Description, seen.description = fv.Text, true
		}
	}
	switch {
	case !seen.txID:
		return Record{}, missingField(FieldTxID)
	case !seen.txType:
		return Record{}, missingField(FieldTxType)
	case !seen.fromUser:
		return Record{}, missingField(FieldFromUser)
	case !seen.toUser:
		return Record{}, missingField(FieldToUser)
	case !seen.amount:
		return Record{}, missingField(FieldAmount)
	case !seen.timestamp:
		return Record{}, missingField(FieldTimestamp)
	case !seen.status:
		return Record{}, missingField(FieldStatus)
	case !seen.description:
		return Record{}, missingField(FieldDescription)
	}
	return rec, nil
}

func missingField(f Field) error {
	return errors.RecordParseErr("missing field "+f.Attr(), nil)
}

// String renders the record for diagnostics. The attribute order is fixed
// for stable log and mismatch output.
func (r Record) String() string {
	return fmt.Sprintf("{ %d, %s, %s, %d, %d, %d, %d, %s }",
		r.TxID, r.TxType, r.Status, r.FromUser, r.ToUser, r.Timestamp, r.Amount, r.Description)
}
