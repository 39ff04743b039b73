package models

import "time"

// Cellule defines an organizational sub-group with a designated leader,
// a meeting location and contact details.
type Cellule struct {
	ID             int64     `json:"id" example:"2"`
	Name           string    `json:"name" example:"Cellule Dakar Centre"`
	LeaderPersonID int64     `json:"leaderPersonId" example:"12"`
	LocationDesc   string    `json:"locationDesc" example:"Immeuble Kebe, 3e étage"`
	LocationLink   *string   `json:"locationLink,omitempty" example:"https://maps.example.com/xyz"`
	StartTime      *string   `json:"startTime,omitempty" example:"18h30"`
	ContactPhone   *string   `json:"contactPhone,omitempty" example:"+221 78 000 11 22"`
	IsActive       bool      `json:"isActive" example:"true"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Leader is populated on list responses from the upstream API.
	Leader *User `json:"leader,omitempty"`
}
