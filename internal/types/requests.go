package types

import (
	"github.com/go-playground/validator/v10"
)

// BatchScreenRequest represents a request to screen several applications in
// one run. Order of IDs is preserved in the result.
type BatchScreenRequest struct {
	ApplicationIDs []string `json:"application_ids" validate:"required,min=1,dive,uuid"`
}

// Validate validates the BatchScreenRequest using the validator.
func (r *BatchScreenRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
