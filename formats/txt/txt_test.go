package txt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors "tx-codec/errors"
	models "tx-codec/models"
)

const goodInput = `# Transaction Record
TX_ID: 1
AMOUNT: 100
TIMESTAMP: 1000000000000
DESCRIPTION: Description 1
TX_TYPE: DEPOSIT
FROM_USER_ID: 1001
TO_USER_ID: 2001
STATUS: SUCCESS

TX_ID: 2
AMOUNT: 200
TIMESTAMP: 1000000000001
DESCRIPTION: Description 2
TX_TYPE: TRANSFER
FROM_USER_ID: 1002
TO_USER_ID: 2002
STATUS: FAILURE
`

func TestReaderParsesRuns(t *testing.T) {
	r := NewReader(strings.NewReader(goodInput))

	rec, err := r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, models.Record{
		TxID:        1,
		TxType:      models.TxDeposit,
		FromUser:    1001,
		ToUser:      2001,
		Amount:      100,
		Timestamp:   1000000000000,
		Status:      models.StatusSuccess,
		Description: "Description 1",
	}, rec)

	rec, err = r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), rec.TxID)
	assert.Equal(t, models.StatusFailure, rec.Status)

	_, err = r.ProduceRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderArbitraryLineOrder(t *testing.T) {
	input := "STATUS: SUCCESS\n" +
		"TX_ID: 1\n" +
		"TO_USER_ID: 2001\n" +
		"TX_TYPE: DEPOSIT\n" +
		"DESCRIPTION: Description 1\n" +
		"FROM_USER_ID: 1001\n" +
		"TIMESTAMP: 1000000000000\n" +
		"AMOUNT: 100\n" +
		"\n" +
		"AMOUNT: 200\n" +
		"STATUS: FAILURE\n" +
		"TX_ID: 2\n" +
		"FROM_USER_ID: 1002\n" +
		"DESCRIPTION: Description 2\n" +
		"TIMESTAMP: 1000000000001\n" +
		"TX_TYPE: TRANSFER\n" +
		"TO_USER_ID: 2002\n" +
		"\n" +
		"# end of data\n"
	r := NewReader(strings.NewReader(input))

	first, err := r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.TxID)
	assert.Equal(t, models.TxDeposit, first.TxType)

	second, err := r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.TxID)
	assert.Equal(t, models.TxTransfer, second.TxType)

	_, err = r.ProduceRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderSkipsInterleavedComments(t *testing.T) {
	input := "# header comment\n" +
		"TX_ID: 1\n" +
		"# mid-record comment\n" +
		"AMOUNT: 100\n" +
		"TIMESTAMP: 1000000000000\n" +
		"DESCRIPTION: d\n" +
		"TX_TYPE: DEPOSIT\n" +
		"FROM_USER_ID: 1001\n" +
		"TO_USER_ID: 2001\n" +
		"STATUS: SUCCESS\n"
	r := NewReader(strings.NewReader(input))

	rec, err := r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rec.TxID)

	_, err = r.ProduceRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderTrailingCommentNoSpuriousRecord(t *testing.T) {
	input := "TX_ID: 1\nAMOUNT: 100\nTIMESTAMP: 1\nDESCRIPTION: d\nTX_TYPE: DEPOSIT\n" +
		"FROM_USER_ID: 1001\nTO_USER_ID: 2001\nSTATUS: SUCCESS\n\n# trailing note\n"
	r := NewReader(strings.NewReader(input))

	_, err := r.ProduceRecord()
	require.NoError(t, err)

	_, err = r.ProduceRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderNoSpaceAfterColon(t *testing.T) {
	input := "TX_ID:1\nAMOUNT:100\nTIMESTAMP:1\nDESCRIPTION:d\nTX_TYPE:DEPOSIT\n" +
		"FROM_USER_ID:1001\nTO_USER_ID:2001\nSTATUS:SUCCESS\n"
	r := NewReader(strings.NewReader(input))

	rec, err := r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rec.TxID)
	assert.Equal(t, "d", rec.Description)
}

func TestReaderKeepsExtraLeadingSpace(t *testing.T) {
	// One space after the colon is the separator; the second one belongs
	// to the value, which then fails numeric parsing.
	input := "TX_ID:  1\n"
	r := NewReader(strings.NewReader(input))

	_, err := r.ProduceRecord()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.FieldParse))
}

func TestReaderValueWithColons(t *testing.T) {
	input := "TX_ID: 1\nAMOUNT: 100\nTIMESTAMP: 1\nDESCRIPTION: note: see ticket 7\n" +
		"TX_TYPE: DEPOSIT\nFROM_USER_ID: 1001\nTO_USER_ID: 2001\nSTATUS: SUCCESS\n"
	r := NewReader(strings.NewReader(input))

	rec, err := r.ProduceRecord()
	require.NoError(t, err)
	assert.Equal(t, "note: see ticket 7", rec.Description)
}

func TestReaderMissingDelimiter(t *testing.T) {
	r := NewReader(strings.NewReader("TX_ID 1\n"))

	_, err := r.ProduceRecord()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.Produce))
	assert.True(t, errors.IsKind(err, errors.FieldParse))
	assert.Contains(t, err.Error(), "no delimiter")
}

func TestReaderIncompleteRunReportsMissingField(t *testing.T) {
	input := "TX_ID: 1\nAMOUNT: 100\n\nTX_ID: 2\n"
	r := NewReader(strings.NewReader(input))

	_, err := r.ProduceRecord()
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.RecordParse))
	assert.Contains(t, err.Error(), "missing field tx_type")
}

func TestReaderEmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.ProduceRecord()
	assert.Equal(t, io.EOF, err)
}

func TestSerializeExactLayout(t *testing.T) {
	s := NewSerializer()
	data, err := s.Serialize(models.Record{
		TxID:        1,
		TxType:      models.TxDeposit,
		FromUser:    1001,
		ToUser:      2001,
		Amount:      100,
		Timestamp:   1000000000000,
		Status:      models.StatusSuccess,
		Description: "Description 1",
	})
	require.NoError(t, err)

	want := "TX_ID: 1\n" +
		"AMOUNT: 100\n" +
		"TIMESTAMP: 1000000000000\n" +
		"DESCRIPTION: Description 1\n" +
		"TX_TYPE: DEPOSIT\n" +
		"FROM_USER_ID: 1001\n" +
		"TO_USER_ID: 2001\n" +
		"STATUS: SUCCESS\n"
	assert.Equal(t, want, string(data))
}

func TestWriterSeparatesRecordsWithBlankLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write([]byte("TX_ID: 1\nSTATUS: SUCCESS\n")))

	assert.Equal(t, "TX_ID: 1\nSTATUS: SUCCESS\n\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	src := NewReader(strings.NewReader(goodInput))

	var buf bytes.Buffer
	s := NewSerializer()
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())

	var originals []models.Record
	for {
		rec, err := src.ProduceRecord()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		originals = append(originals, rec)

		data, err := s.Serialize(rec)
		require.NoError(t, err)
		require.NoError(t, w.Write(data))
	}
	require.Len(t, originals, 2)

	back := NewReader(&buf)
	for _, want := range originals {
		got, err := back.ProduceRecord()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := back.ProduceRecord()
	assert.Equal(t, io.EOF, err)
}
