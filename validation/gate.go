package validation

import (
	"github.com/rpupo63/portfolio-backend/errs"
)

// Gate is the single decision point after the field validators run. A nil
// return means the pipeline proceeds; otherwise the returned error carries the
// full field-error list and renders the fixed 400 payload. The gate holds no
// state and never partially applies a write.
func Gate(fieldErrors []errs.FieldError) error {
	if len(fieldErrors) == 0 {
		return nil
	}
	return errs.NewValidationErr(fieldErrors)
}
