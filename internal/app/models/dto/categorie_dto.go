package dto

import (
	"github.com/jobhubs/backoffice/internal/pkg/validation"
)

// CreateCategorieRequest carries the category form (name only).
type CreateCategorieRequest struct {
	Nom string `json:"nom" binding:"required"`
}

// Validate enforces the 2-50 character name bound.
func (r *CreateCategorieRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	ok := validation.NewStringValidation(r.Nom).
		WithMinLength(validation.CategorieNameMinLength).
		WithMaxLength(validation.CategorieNameMaxLength).
		Validate()
	if !ok {
		errs.AddError("nom", "Le nom doit contenir entre 2 et 50 caractères")
	}

	return errs
}

// UpdateCategorieRequest carries the category edit form.
type UpdateCategorieRequest struct {
	Nom string `json:"nom" binding:"required"`
}

// Validate enforces the same bounds as creation.
func (r *UpdateCategorieRequest) Validate() *ValidationErrors {
	create := CreateCategorieRequest{Nom: r.Nom}
	return create.Validate()
}
