package dto

import (
	"github.com/jobhubs/backoffice/internal/pkg/validation"
)

// CreateCelluleRequest carries the cellule creation form. The leader
// reference is resolved against the user collection before any upstream
// call.
type CreateCelluleRequest struct {
	Name           string `json:"name" binding:"required"`
	LeaderPersonID int64  `json:"leaderPersonId" binding:"required,min=1"`
	LocationDesc   string `json:"locationDesc" binding:"required"`
	LocationLink   string `json:"locationLink,omitempty"`
	StartTime      string `json:"startTime,omitempty"`
	ContactPhone   string `json:"contactPhone,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// Validate applies the form-level rules on top of the binding checks.
func (r *CreateCelluleRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	ok := validation.NewStringValidation(r.Name).
		WithMinLength(validation.CelluleNameMinLength).
		WithMaxLength(validation.CelluleNameMaxLength).
		Validate()
	if !ok {
		errs.AddError("name", "Le nom de la cellule est obligatoire")
	}

	if !validation.NewStringValidation(r.LocationDesc).Validate() {
		errs.AddError("locationDesc", "La description de localisation est obligatoire")
	}
	if r.LocationLink != "" && !validation.IsValidURL(r.LocationLink) {
		errs.AddError("locationLink", "Veuillez entrer une URL valide")
	}
	if r.ContactPhone != "" && !validation.IsValidPhone(r.ContactPhone) {
		errs.AddError("contactPhone", "Veuillez entrer un numéro de téléphone valide")
	}

	return errs
}

// UpdateCelluleRequest carries the cellule edit form.
type UpdateCelluleRequest struct {
	Name           *string `json:"name,omitempty"`
	LeaderPersonID *int64  `json:"leaderPersonId,omitempty"`
	LocationDesc   *string `json:"locationDesc,omitempty"`
	LocationLink   *string `json:"locationLink,omitempty"`
	StartTime      *string `json:"startTime,omitempty"`
	ContactPhone   *string `json:"contactPhone,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// Validate checks whichever fields the patch provides.
func (r *UpdateCelluleRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	if r.Name != nil && !validation.NewStringValidation(*r.Name).Validate() {
		errs.AddError("name", "Le nom de la cellule est obligatoire")
	}
	if r.LocationDesc != nil && !validation.NewStringValidation(*r.LocationDesc).Validate() {
		errs.AddError("locationDesc", "La description de localisation est obligatoire")
	}
	if r.LocationLink != nil && *r.LocationLink != "" && !validation.IsValidURL(*r.LocationLink) {
		errs.AddError("locationLink", "Veuillez entrer une URL valide")
	}
	if r.ContactPhone != nil && *r.ContactPhone != "" && !validation.IsValidPhone(*r.ContactPhone) {
		errs.AddError("contactPhone", "Veuillez entrer un numéro de téléphone valide")
	}
	if r.LeaderPersonID != nil && *r.LeaderPersonID < 1 {
		errs.AddError("leaderPersonId", "Veuillez sélectionner un leader pour la cellule")
	}

	return errs
}
