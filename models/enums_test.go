package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxTypeTextRoundTrip(t *testing.T) {
	for _, tt := range []TxType{TxDeposit, TxTransfer, TxWithdrawal} {
		parsed, err := ParseTxType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, parsed)
	}
}

func TestTxTypeByteRoundTrip(t *testing.T) {
	for _, tt := range []TxType{TxDeposit, TxTransfer, TxWithdrawal} {
		parsed, err := TxTypeFromByte(tt.Byte())
		require.NoError(t, err)
		assert.Equal(t, tt, parsed)
	}
}

func TestTxTypeWireValues(t *testing.T) {
	assert.Equal(t, byte(0), TxDeposit.Byte())
	assert.Equal(t, byte(1), TxTransfer.Byte())
	assert.Equal(t, byte(2), TxWithdrawal.Byte())
}

func TestParseTxTypeRejectsUnknown(t *testing.T) {
	_, err := ParseTxType("REFUND")
	assert.Error(t, err)

	_, err = ParseTxType("deposit")
	assert.Error(t, err)
}

func TestTxTypeFromByteRejectsUnknown(t *testing.T) {
	_, err := TxTypeFromByte(3)
	assert.Error(t, err)
}

func TestStatusTextRoundTrip(t *testing.T) {
	for _, st := range []Status{StatusSuccess, StatusFailure, StatusPending} {
		parsed, err := ParseStatus(st.String())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
}

func TestStatusByteRoundTrip(t *testing.T) {
	for _, st := range []Status{StatusSuccess, StatusFailure, StatusPending} {
		parsed, err := StatusFromByte(st.Byte())
		require.NoError(t, err)
		assert.Equal(t, st, parsed)
	}
}

func TestStatusCanonicalText(t *testing.T) {
	assert.Equal(t, "SUCCESS", StatusSuccess.String())
	assert.Equal(t, "FAILURE", StatusFailure.String())
	assert.Equal(t, "PENDING", StatusPending.String())
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	_, err := ParseStatus("DONE")
	assert.Error(t, err)
}

func TestStatusFromByteRejectsUnknown(t *testing.T) {
	_, err := StatusFromByte(255)
	assert.Error(t, err)
}
