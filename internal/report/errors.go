package report

import (
	"errors"
	"fmt"

	"sellerflow/internal/metrics"
)

// DocumentGenerationError identifies the record that stopped a document from
// being built. Index is -1 when the failure is not tied to a record.
type DocumentGenerationError struct {
	Dataset string
	Index   int
	ID      string
	Field   string
	Err     error
}

func (e *DocumentGenerationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("generating document: %v", e.Err)
	}
	return fmt.Sprintf("generating document: %s[%d] (id %q) field %s: %v", e.Dataset, e.Index, e.ID, e.Field, e.Err)
}

func (e *DocumentGenerationError) Unwrap() error {
	return e.Err
}

type DocumentTooLargeError struct {
	Count int
	Max   int
}

func (e *DocumentTooLargeError) Error() string {
	return fmt.Sprintf("document has %d records, limit is %d", e.Count, e.Max)
}

func AsGenerationError(err error) (*DocumentGenerationError, bool) {
	var ge *DocumentGenerationError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func IsTooLarge(err error) bool {
	var tl *DocumentTooLargeError
	return errors.As(err, &tl)
}

// recordError converts a calculator failure on one record into a
// DocumentGenerationError, keeping the field name the calculator reported.
func recordError(dataset string, index int, id string, err error) error {
	field := ""
	var ve *metrics.ValidationError
	if errors.As(err, &ve) {
		field = ve.Field
	}
	return &DocumentGenerationError{Dataset: dataset, Index: index, ID: id, Field: field, Err: err}
}

func missingField(dataset string, index int, id, field string) error {
	return &DocumentGenerationError{
		Dataset: dataset,
		Index:   index,
		ID:      id,
		Field:   field,
		Err:     errors.New("required field is missing"),
	}
}

func renderError(err error) error {
	return &DocumentGenerationError{Index: -1, Err: err}
}
