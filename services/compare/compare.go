package compare

import (
	// Go Internal Packages
	"context"
	"fmt"
	"io"

	// Local Packages
	models "tx-codec/models"

	// External Packages
	"go.uber.org/zap"
)

// Result is the outcome of one lockstep comparison.
type Result struct {
	Identical bool   `json:"identical"`
	Records   uint64 `json:"records"`
	Reason    string `json:"reason,omitempty"`
}

// Comparer pulls two record streams in lockstep and compares them by value.
// The encodings behind the streams play no part in the comparison.
type Comparer struct {
	logger *zap.Logger
	first  models.RecordProducer
	second models.RecordProducer
}

func NewComparer(logger *zap.Logger, first, second models.RecordProducer) *Comparer {
	return &Comparer{logger: logger, first: first, second: second}
}

// Run compares until both streams end together, one ends early, a record
// fails to produce, or a pair differs. Any of the last three makes the
// streams not identical; the error return is reserved for cancellation.
func (c *Comparer) Run(ctx context.Context) (Result, error) {
	var res Result
	for {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("comparison interrupted", zap.Error(err))
			return res, err
		}

		rec1, err1 := c.first.ProduceRecord()
		rec2, err2 := c.second.ProduceRecord()

		switch {
		case err1 == io.EOF && err2 == io.EOF:
			res.Identical = true
			return res, nil
		case err1 == io.EOF || err2 == io.EOF:
			res.Reason = "streams end at different record counts"
			return res, nil
		case err1 != nil:
			c.logger.Error("failed to get record from file1", zap.Error(err1))
			res.Reason = fmt.Sprintf("failed to get record from file1. %s", err1)
			return res, nil
		case err2 != nil:
			c.logger.Error("failed to get record from file2", zap.Error(err2))
			res.Reason = fmt.Sprintf("failed to get record from file2. %s", err2)
			return res, nil
		case rec1 != rec2:
			res.Reason = fmt.Sprintf("record from file1 %s not equal to record %s from file2", rec1, rec2)
			return res, nil
		}
		res.Records++
	}
}
