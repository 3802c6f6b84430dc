package munro

import "fmt"

// RetrievalError indicates the dataset resource could not be fetched or
// staged locally. There is no retry policy; a retrieval failure aborts the
// run.
type RetrievalError struct {
	URL string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieve dataset %s: %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// SchemaError indicates the dataset does not match the expected shape: a
// required column is missing or a cell cannot be parsed. Row is the
// 1-based data row; 0 means the header itself is at fault.
type SchemaError struct {
	Column string
	Row    int
	Err    error
}

func (e *SchemaError) Error() string {
	switch {
	case e.Column != "" && e.Row > 0:
		return fmt.Sprintf("dataset schema: column %q, row %d: %v", e.Column, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("dataset schema: column %q: %v", e.Column, e.Err)
	default:
		return fmt.Sprintf("dataset schema: %v", e.Err)
	}
}

func (e *SchemaError) Unwrap() error { return e.Err }
