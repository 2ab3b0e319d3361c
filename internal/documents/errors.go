package documents

import "fmt"

// UnsupportedFormatError indicates the document bytes are in a format the
// extractor cannot read. The orchestrator treats it like any other
// extraction failure and falls back to degraded scoring.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}

// CorruptDocumentError indicates the document bytes could not be decoded as
// readable text.
type CorruptDocumentError struct {
	Reason string
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt document: %s", e.Reason)
}
