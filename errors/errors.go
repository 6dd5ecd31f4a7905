package errors

import "errors"

// Kind classifies an error by the pipeline stage that raised it.
type Kind uint8

const (
	Other       Kind = iota
	Read             // raw unit could not be obtained from the source
	FieldParse       // a single field value could not be converted
	RecordParse      // a record could not be assembled from its fields
	Produce          // producing the next typed record failed
	Serialize        // a record could not be rendered to bytes
	Write            // the byte sink rejected a write
	Build            // a reader, serializer or writer could not be constructed
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "read"
	case FieldParse:
		return "field parse"
	case RecordParse:
		return "record parse"
	case Produce:
		return "produce"
	case Serialize:
		return "serialize"
	case Write:
		return "write"
	case Build:
		return "build"
	}
	return "other"
}

// Error is a stage-tagged error with an optional wrapped cause.
type Error struct {
	Kind Kind
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Text
	}
	return e.Text + ". source " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a stage-tagged error. err is the cause and may be nil.
func E(kind Kind, text string, err error) error {
	return &Error{Kind: kind, Text: text, Err: err}
}

func ReadErr(text string, err error) error {
	return E(Read, text, err)
}

func FieldParseErr(text string, err error) error {
	return E(FieldParse, text, err)
}

func RecordParseErr(text string, err error) error {
	return E(RecordParse, text, err)
}

func ProduceErr(text string, err error) error {
	return E(Produce, text, err)
}

func SerializeErr(text string, err error) error {
	return E(Serialize, text, err)
}

func WriteErr(text string, err error) error {
	return E(Write, text, err)
}

func BuildErr(text string, err error) error {
	return E(Build, text, err)
}

// IsKind reports whether any error in err's chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind == kind {
			return true
		}
		err = e.Unwrap()
		if err == nil {
			return false
		}
	}
	return false
}

// KindOf returns the kind of the outermost stage-tagged error in err's
// chain, or Other when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}
