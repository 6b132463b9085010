// internal/models/product.go
package models

// Product is a sellable catalog entry. Immagine holds a base64-encoded
// image in a text column.
type Product struct {
	ID        uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome      string  `json:"nome" gorm:"size:100;not null"`
	Prezzo    float64 `json:"prezzo" gorm:"type:decimal(6,2);not null"`
	Categoria string  `json:"categoria" gorm:"size:50;not null;default:'Altro'"`
	Immagine  string  `json:"immagine" gorm:"type:text"`
}

// DefaultCategory is assigned when a product is created without one.
const DefaultCategory = "Altro"
