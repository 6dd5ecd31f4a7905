package models

import (
	// Go Internal Packages
	"fmt"
)

// TxType is the transaction kind carried by a record.
type TxType uint8

const (
	TxDeposit TxType = iota
	TxTransfer
	TxWithdrawal
)

// ParseTxType maps the canonical text form to a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "DEPOSIT":
		return TxDeposit, nil
	case "TRANSFER":
		return TxTransfer, nil
	case "WITHDRAWAL":
		return TxWithdrawal, nil
	}
	return 0, fmt.Errorf("invalid tx_type %q", s)
}

// String returns the canonical text form used by the text encodings.
func (t TxType) String() string {
	switch t {
	case TxDeposit:
		return "DEPOSIT"
	case TxTransfer:
		return "TRANSFER"
	case TxWithdrawal:
		return "WITHDRAWAL"
	}
	return fmt.Sprintf("TxType(%d)", uint8(t))
}

// TxTypeFromByte maps the binary wire byte to a TxType.
func TxTypeFromByte(b byte) (TxType, error) {
	switch b {
	case 0:
		return TxDeposit, nil
	case 1:
		return TxTransfer, nil
	case 2:
		return TxWithdrawal, nil
	}
	return 0, fmt.Errorf("invalid tx_type byte %d", b)
}

// Byte returns the binary wire byte for t.
func (t TxType) Byte() byte {
	switch t {
	case TxDeposit:
		return 0
	case TxTransfer:
		return 1
	case TxWithdrawal:
		return 2
	}
	return 0
}

// Status is the settlement state carried by a record.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusPending
)

// ParseStatus maps the canonical text form to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "SUCCESS":
		return StatusSuccess, nil
	case "FAILURE":
		return StatusFailure, nil
	case "PENDING":
		return StatusPending, nil
	}
	return 0, fmt.Errorf("invalid status %q", s)
}

// String returns the canonical text form used by the text encodings.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusPending:
		return "PENDING"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// StatusFromByte maps the binary wire byte to a Status.
func StatusFromByte(b byte) (Status, error) {
	switch b {
	case 0:
		return StatusSuccess, nil
	case 1:
		return StatusFailure, nil
	case 2:
		return StatusPending, nil
	}
	return 0, fmt.Errorf("invalid status byte %d", b)
}

// Byte returns the binary wire byte for s.
func (s Status) Byte() byte {
	switch s {
	case StatusSuccess:
		return 0
	case StatusFailure:
		return 1
	case StatusPending:
		return 2
	}
	return 0
}
