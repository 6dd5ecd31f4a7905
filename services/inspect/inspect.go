package inspect

import (
	// Go Internal Packages
	"context"
	"io"

	// Local Packages
	models "tx-codec/models"

	// External Packages
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Stats aggregates one pass over a record stream. The amount total is kept
// as a decimal so that it cannot overflow however long the stream runs.
type Stats struct {
	Records      uint64          `json:"records"`
	Malformed    uint64          `json:"malformed"`
	Deposits     uint64          `json:"deposits"`
	Transfers    uint64          `json:"transfers"`
	Withdrawals  uint64          `json:"withdrawals"`
	Success      uint64          `json:"success"`
	Failure      uint64          `json:"failure"`
	Pending      uint64          `json:"pending"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	MinTimestamp uint64          `json:"min_timestamp"`
	MaxTimestamp uint64          `json:"max_timestamp"`
}

// Inspector consumes a record stream and aggregates per-attribute counts.
type Inspector struct {
	logger   *zap.Logger
	producer models.RecordProducer
}

func NewInspector(logger *zap.Logger, producer models.RecordProducer) *Inspector {
	return &Inspector{logger: logger, producer: producer}
}

// Run consumes the stream to exhaustion. Records that fail to produce are
// counted as malformed and skipped.
func (i *Inspector) Run(ctx context.Context) (Stats, error) {
	stats := Stats{TotalAmount: decimal.Zero}
	for {
		if err := ctx.Err(); err != nil {
			i.logger.Warn("inspection interrupted", zap.Error(err))
			return stats, err
		}

		rec, err := i.producer.ProduceRecord()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			stats.Malformed++
			i.logger.Error("failed to produce record", zap.Error(err))
			continue
		}
		stats.Records++

		switch rec.TxType {
		case models.TxDeposit:
			stats.Deposits++
		case models.TxTransfer:
			stats.Transfers++
		case models.TxWithdrawal:
			stats.Withdrawals++
		}
		switch rec.Status {
		case models.StatusSuccess:
			stats.Success++
		case models.StatusFailure:
			stats.Failure++
		case models.StatusPending:
			stats.Pending++
		}

		stats.TotalAmount = stats.TotalAmount.Add(decimal.NewFromUint64(rec.Amount))
		if stats.Records == 1 || rec.Timestamp < stats.MinTimestamp {
			stats.MinTimestamp = rec.Timestamp
		}
		if rec.Timestamp > stats.MaxTimestamp {
			stats.MaxTimestamp = rec.Timestamp
		}
	}
}
