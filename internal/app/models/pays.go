package models

import "time"

// Pays defines a country reference entity (name, dial code, flag).
type Pays struct {
	ID        int64     `json:"id" example:"3"`
	Nom       string    `json:"nom" example:"Sénégal"`
	Code      string    `json:"code" example:"221"`
	Flag      *string   `json:"flag,omitempty" example:"🇸🇳"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Categorie defines a listing category (name only).
type Categorie struct {
	ID        int64     `json:"id" example:"5"`
	Nom       string    `json:"nom" example:"BTP"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
