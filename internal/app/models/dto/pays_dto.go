package dto

import (
	"github.com/jobhubs/backoffice/internal/pkg/validation"
)

// CreatePaysRequest carries the country form.
type CreatePaysRequest struct {
	Nom  string `json:"nom" binding:"required"`
	Code string `json:"code" binding:"required"`
	Flag string `json:"flag,omitempty"`
}

// Validate enforces the name bound and the 1-3 digit dial code.
func (r *CreatePaysRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	ok := validation.NewStringValidation(r.Nom).
		WithMinLength(validation.PaysNameMinLength).
		WithMaxLength(validation.PaysNameMaxLength).
		Validate()
	if !ok {
		errs.AddError("nom", "Le nom doit contenir entre 2 et 100 caractères")
	}

	if !validation.IsValidDialCode(r.Code) {
		errs.AddError("code", "Le code doit être un indicatif de 1 à 3 chiffres")
	}

	return errs
}

// UpdatePaysRequest carries the country edit form.
type UpdatePaysRequest struct {
	Nom  *string `json:"nom,omitempty"`
	Code *string `json:"code,omitempty"`
	Flag *string `json:"flag,omitempty"`
}

// Validate checks whichever fields the patch provides.
func (r *UpdatePaysRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	if r.Nom != nil {
		ok := validation.NewStringValidation(*r.Nom).
			WithMinLength(validation.PaysNameMinLength).
			WithMaxLength(validation.PaysNameMaxLength).
			Validate()
		if !ok {
			errs.AddError("nom", "Le nom doit contenir entre 2 et 100 caractères")
		}
	}

	if r.Code != nil && !validation.IsValidDialCode(*r.Code) {
		errs.AddError("code", "Le code doit être un indicatif de 1 à 3 chiffres")
	}

	return errs
}
