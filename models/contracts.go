package models

// RecordProducer pulls typed records out of an underlying byte source.
// ProduceRecord returns io.EOF once the source is cleanly exhausted; every
// other failure is a produce error wrapping its cause. A failed call does
// not advance past the failing unit by itself; the caller decides whether
// to keep pulling.
type RecordProducer interface {
	ProduceRecord() (Record, error)
}

// RecordSerializer renders one record into the bytes of its encoding.
type RecordSerializer interface {
	Serialize(rec Record) ([]byte, error)
}

// RecordWriter moves serialized records onto the underlying byte sink.
// WriteHeader is called once before the first record and is a no-op for
// encodings without a leading header.
type RecordWriter interface {
	WriteHeader() error
	Write(data []byte) error
}
