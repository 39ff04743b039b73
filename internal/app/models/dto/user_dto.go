package dto

import (
	"github.com/jobhubs/backoffice/internal/app/models"
	"github.com/jobhubs/backoffice/internal/pkg/validation"
)

// CreateUserRequest carries the fields of the user creation form. JSON
// names follow the upstream signup contract, so the request can be
// forwarded as-is once validated; zero-valued optional fields are
// omitted the way the console stripped empty values before sending.
type CreateUserRequest struct {
	Nom         string          `json:"nom" binding:"required"`
	Prenom      string          `json:"prenom,omitempty"`
	Email       string          `json:"email" binding:"required"`
	Password    string          `json:"password" binding:"required,min=6"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
	PaysID      int64           `json:"paysId" binding:"required,min=1"`
	CelluleID   int64           `json:"celluleId,omitempty"`
	Role        models.RoleType `json:"role,omitempty"`
}

// Validate applies the form-level rules on top of the binding checks.
func (r *CreateUserRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	if !validation.IsValidEmail(r.Email) {
		errs.AddError("email", "Un email valide est requis")
	}
	if r.PhoneNumber != "" && !validation.IsValidPhone(r.PhoneNumber) {
		errs.AddError("phoneNumber", "Veuillez entrer un numéro de téléphone valide")
	}
	if r.Role != "" && !r.Role.IsValid() {
		errs.AddError("role", "Le rôle doit être USER ou ADMIN")
	}

	return errs
}

// UpdateUserRequest carries the partial fields of the user edit form.
// Only provided fields are forwarded.
type UpdateUserRequest struct {
	Nom         *string          `json:"nom,omitempty"`
	Prenom      *string          `json:"prenom,omitempty"`
	Email       *string          `json:"email,omitempty"`
	PhoneNumber *string          `json:"phoneNumber,omitempty"`
	PaysID      *int64           `json:"paysId,omitempty"`
	CelluleID   *int64           `json:"celluleId,omitempty"`
	Role        *models.RoleType `json:"role,omitempty"`
}

// Validate checks whichever fields the patch provides.
func (r *UpdateUserRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	if r.Nom != nil && !validation.NewStringValidation(*r.Nom).Validate() {
		errs.AddError("nom", "Le nom est requis")
	}
	if r.Email != nil && !validation.IsValidEmail(*r.Email) {
		errs.AddError("email", "Un email valide est requis")
	}
	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validation.IsValidPhone(*r.PhoneNumber) {
		errs.AddError("phoneNumber", "Veuillez entrer un numéro de téléphone valide")
	}
	if r.Role != nil && !r.Role.IsValid() {
		errs.AddError("role", "Le rôle doit être USER ou ADMIN")
	}
	if r.PaysID != nil && *r.PaysID < 1 {
		errs.AddError("paysId", "Le pays est invalide")
	}

	return errs
}
