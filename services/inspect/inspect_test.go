package inspect

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	formats "tx-codec/formats"
)

const csvInput = "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION\n" +
	"1,DEPOSIT,1001,2001,100,1000000000005,SUCCESS,a\n" +
	"2,TRANSFER,1002,2002,200,1000000000001,FAILURE,b\n" +
	"3,TRANSFER,1003,2003,300,1000000000009,PENDING,c\n" +
	"4,WITHDRAWAL,1004,2004,400,1000000000003,SUCCESS,d\n"

func newInspector(t *testing.T, input string) *Inspector {
	t.Helper()
	reader, err := formats.NewReader(strings.NewReader(input), formats.FormatCSV)
	require.NoError(t, err)
	return NewInspector(zap.NewNop(), reader)
}

func TestInspectAggregates(t *testing.T) {
	stats, err := newInspector(t, csvInput).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(4), stats.Records)
	assert.Zero(t, stats.Malformed)
	assert.Equal(t, uint64(1), stats.Deposits)
	assert.Equal(t, uint64(2), stats.Transfers)
	assert.Equal(t, uint64(1), stats.Withdrawals)
	assert.Equal(t, uint64(2), stats.Success)
	assert.Equal(t, uint64(1), stats.Failure)
	assert.Equal(t, uint64(1), stats.Pending)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, uint64(1000000000001), stats.MinTimestamp)
	assert.Equal(t, uint64(1000000000009), stats.MaxTimestamp)
}

func TestInspectCountsMalformed(t *testing.T) {
	input := "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION\n" +
		"1,DEPOSIT,1001,2001,100,1000000000000,SUCCESS,ok\n" +
		"2,DEPOSIT,1002,2002,oops,1000000000001,SUCCESS,bad\n" +
		"3,DEPOSIT,1003,2003,300,1000000000002,SUCCESS,ok\n"
	stats, err := newInspector(t, input).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(2), stats.Records)
	assert.Equal(t, uint64(1), stats.Malformed)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(400)))
}

func TestInspectEmptyStream(t *testing.T) {
	stats, err := newInspector(t, "").Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Records)
	assert.True(t, stats.TotalAmount.IsZero())
	assert.Zero(t, stats.MinTimestamp)
	assert.Zero(t, stats.MaxTimestamp)
}

func TestInspectTotalBeyondUint64(t *testing.T) {
	// Two amounts that together overflow uint64.
	input := "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION\n" +
		"1,DEPOSIT,1,2,18446744073709551615,1,SUCCESS,a\n" +
		"2,DEPOSIT,1,2,18446744073709551615,2,SUCCESS,b\n"
	stats, err := newInspector(t, input).Run(context.Background())
	require.NoError(t, err)

	want, err := decimal.NewFromString("36893488147419103230")
	require.NoError(t, err)
	assert.True(t, stats.TotalAmount.Equal(want))
}

func TestInspectCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newInspector(t, csvInput).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
