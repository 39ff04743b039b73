package models

import "time"

// Activite defines a professional service listing owned by a user.
type Activite struct {
	ID            int64   `json:"id" example:"7"`
	Fonction      string  `json:"fonction" example:"Plombier"`
	Region        string  `json:"region" example:"Dakar"`
	Marque        string  `json:"marque" example:"SenPlomberie"`
	Logo          *string `json:"logo,omitempty"`
	Description   string  `json:"description"`
	Telephone     string  `json:"telephone" example:"+221 77 555 66 77"`
	Whatsapp      *string `json:"whatsapp,omitempty"`
	Tarif         string  `json:"tarif" example:"à partir de 10 000 FCFA"`
	Disponibilite string  `json:"disponibilite" example:"Lun-Sam 8h-18h"`
	SiteWeb       *string `json:"siteWeb,omitempty"`
	Facebook      *string `json:"facebook,omitempty"`
	Instagram     *string `json:"instagram,omitempty"`
	Tiktok        *string `json:"tiktok,omitempty"`
	CategorieID   int64   `json:"categorieId" example:"5"`
	PaysID        int64   `json:"paysId" example:"3"`
	UserID        int64   `json:"userId" example:"12"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Categorie  *Categorie  `json:"categorie,omitempty"`
	Pays       *Pays       `json:"pays,omitempty"`
	Expertises []Expertise `json:"expertises,omitempty"`
	Photos     []Photo     `json:"photos,omitempty"`
}

// Expertise is a free-text skill tag scoped to one Activite.
type Expertise struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" example:"Canalisations"`
	ActiviteID int64  `json:"activiteId"`
}

// Photo is an image URL scoped to one Activite.
type Photo struct {
	ID         int64  `json:"id"`
	URL        string `json:"url"`
	ActiviteID int64  `json:"activiteId"`
}
