package models

import (
	"time"
)

// User defines a platform user as served by the JobHubs API.
// Field names follow the upstream JSON contract.
type User struct {
	ID          int64     `json:"id" example:"1"`
	Nom         string    `json:"nom" example:"Diallo"`
	Prenom      string    `json:"prenom" example:"Aminata"`
	Email       string    `json:"email" example:"aminata.diallo@example.com"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" example:"+221 77 123 45 67"`
	Role        RoleType  `json:"role" example:"USER"`
	PaysID      int64     `json:"paysId" example:"3"`
	CelluleID   *int64    `json:"celluleId,omitempty" example:"2"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-01-02T15:30:00Z"`

	// Relations, present on detail responses
	Pays    *Pays    `json:"pays,omitempty"`
	Cellule *Cellule `json:"cellule,omitempty"`
	// The profile endpoint nests the user's listings under the "Activite"
	// key (upstream naming quirk).
	Activites []Activite `json:"Activite,omitempty"`
}

// FullName returns "nom prenom" for display and search purposes.
func (u *User) FullName() string {
	return u.Nom + " " + u.Prenom
}
