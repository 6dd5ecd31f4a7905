package convert

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

// Policy decides what a conversion run does after a record-level failure.
type Policy uint8

const (
	// PolicyContinue logs the failed record and moves on to the next one.
	PolicyContinue Policy = iota
	// PolicyAbort ends the run on the first failed record.
	PolicyAbort
)

// ParsePolicy maps the config form to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "continue":
		return PolicyContinue, nil
	case "abort":
		return PolicyAbort, nil
	}
	return 0, fmt.Errorf("unknown record error policy %q", s)
}

func (p Policy) String() string {
	if p == PolicyAbort {
		return "abort"
	}
	return "continue"
}

// Summary counts the outcome of one conversion run.
type Summary struct {
	Produced uint64 `json:"produced"`
	Written  uint64 `json:"written"`
	Failed   uint64 `json:"failed"`
}

// Converter streams records from a producer into a serializer and writer
// pair until the source is exhausted.
type Converter struct {
	logger     *zap.Logger
	producer   models.RecordProducer
	serializer models.RecordSerializer
	writer     models.RecordWriter
	policy     Policy
}

func NewConverter(logger *zap.Logger, producer models.RecordProducer,
	serializer models.RecordSerializer, writer models.RecordWriter, policy Policy) *Converter {
	return &Converter{
		logger:     logger,
		producer:   producer,
		serializer: serializer,
		writer:     writer,
		policy:     policy,
	}
}

// Run writes the target header and then converts record by record.
// Record-level failures are counted and resolved per the policy; header
// failures and context cancellation end the run immediately.
func (c *Converter) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := c.writer.WriteHeader(); err != nil {
		return sum, err
	}
	for {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("conversion interrupted", zap.Error(err))
			return sum, err
		}

		rec, err := c.producer.ProduceRecord()
		if err == io.EOF {
			return sum, nil
		}
		if err != nil {
			if c.fail(&sum, "failed to produce record", err) {
				return sum, err
			}
			continue
		}
		sum.Produced++

		data, err := c.serializer.Serialize(rec)
		if err != nil {
			if c.fail(&sum, "failed to serialize record", err) {
				return sum, err
			}
			continue
		}

		if err := c.writer.Write(data); err != nil {
			if c.fail(&sum, "failed to write record", err) {
				return sum, err
			}
			continue
		}
		sum.Written++
	}
}

// fail accounts one record-level failure and reports whether the run must
// abort.
func (c *Converter) fail(sum *Summary, msg string, err error) bool {
	sum.Failed++
	c.logger.Error(msg, zap.Error(err), zap.Uint64("failed", sum.Failed))
	return c.policy == PolicyAbort
}
