package dto

import (
	"github.com/jobhubs/backoffice/internal/pkg/validation"
)

// CreateActiviteRequest carries the add-listing form. UserID designates
// the owning user (upstream creates listings under the user's path).
type CreateActiviteRequest struct {
	UserID        int64    `json:"userId" binding:"required,min=1"`
	Fonction      string   `json:"fonction" binding:"required"`
	Region        string   `json:"region" binding:"required"`
	Marque        string   `json:"marque" binding:"required"`
	Logo          string   `json:"logo,omitempty"`
	Description   string   `json:"description" binding:"required"`
	Telephone     string   `json:"telephone" binding:"required"`
	Whatsapp      string   `json:"whatsapp,omitempty"`
	Tarif         string   `json:"tarif" binding:"required"`
	Disponibilite string   `json:"disponibilite" binding:"required"`
	SiteWeb       string   `json:"siteWeb,omitempty"`
	Facebook      string   `json:"facebook,omitempty"`
	Instagram     string   `json:"instagram,omitempty"`
	Tiktok        string   `json:"tiktok,omitempty"`
	CategorieID   int64    `json:"categorieId" binding:"required,min=1"`
	PaysID        int64    `json:"paysId" binding:"required,min=1"`
	Expertises    []string `json:"expertises,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}

// Validate applies the form-level rules on top of the binding checks.
func (r *CreateActiviteRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	if !validation.IsValidPhone(r.Telephone) {
		errs.AddError("telephone", "Veuillez entrer un numéro de téléphone valide")
	}
	if r.Whatsapp != "" && !validation.IsValidPhone(r.Whatsapp) {
		errs.AddError("whatsapp", "Veuillez entrer un numéro WhatsApp valide")
	}

	urlFields := map[string]string{
		"siteWeb":   r.SiteWeb,
		"facebook":  r.Facebook,
		"instagram": r.Instagram,
		"tiktok":    r.Tiktok,
	}
	for field, value := range urlFields {
		if value != "" && !validation.IsValidURL(value) {
			errs.AddError(field, "Veuillez entrer une URL valide")
		}
	}

	return errs
}

// UpdateActiviteRequest carries the listing edit form.
type UpdateActiviteRequest struct {
	Fonction      *string `json:"fonction,omitempty"`
	Region        *string `json:"region,omitempty"`
	Marque        *string `json:"marque,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	Description   *string `json:"description,omitempty"`
	Telephone     *string `json:"telephone,omitempty"`
	Whatsapp      *string `json:"whatsapp,omitempty"`
	Tarif         *string `json:"tarif,omitempty"`
	Disponibilite *string `json:"disponibilite,omitempty"`
	SiteWeb       *string `json:"siteWeb,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	Instagram     *string `json:"instagram,omitempty"`
	Tiktok        *string `json:"tiktok,omitempty"`
	CategorieID   *int64  `json:"categorieId,omitempty"`
	PaysID        *int64  `json:"paysId,omitempty"`
}

// Validate checks whichever fields the patch provides.
func (r *UpdateActiviteRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()

	if r.Telephone != nil && !validation.IsValidPhone(*r.Telephone) {
		errs.AddError("telephone", "Veuillez entrer un numéro de téléphone valide")
	}
	if r.Whatsapp != nil && *r.Whatsapp != "" && !validation.IsValidPhone(*r.Whatsapp) {
		errs.AddError("whatsapp", "Veuillez entrer un numéro WhatsApp valide")
	}

	urlFields := map[string]*string{
		"siteWeb":   r.SiteWeb,
		"facebook":  r.Facebook,
		"instagram": r.Instagram,
		"tiktok":    r.Tiktok,
	}
	for field, value := range urlFields {
		if value != nil && *value != "" && !validation.IsValidURL(*value) {
			errs.AddError(field, "Veuillez entrer une URL valide")
		}
	}

	return errs
}

// AddPhotosRequest attaches hosted image URLs to a listing.
type AddPhotosRequest struct {
	UserID int64    `json:"userId" binding:"required,min=1"`
	URLs   []string `json:"urls" binding:"required,min=1"`
}

// Validate checks that every entry is a well-formed URL.
func (r *AddPhotosRequest) Validate() *ValidationErrors {
	errs := NewValidationErrors()
	for _, u := range r.URLs {
		if !validation.IsValidURL(u) {
			errs.AddError("urls", "Chaque photo doit être une URL valide")
			break
		}
	}
	return errs
}

// AddExpertiseRequest attaches an expertise tag to a listing.
type AddExpertiseRequest struct {
	UserID    int64  `json:"userId" binding:"required,min=1"`
	Expertise string `json:"expertise" binding:"required"`
}

// UploadResponse is returned by the upload forwarding endpoint.
type UploadResponse struct {
	URL string `json:"url"`
}
