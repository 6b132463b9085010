// internal/services/product_service.go
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/chiosco/pos-backend/internal/models"
	"github.com/chiosco/pos-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Nome      string   `json:"nome" validate:"required"`
	Prezzo    *float64 `json:"prezzo" validate:"required,gte=0"`
	Categoria string   `json:"categoria,omitempty"`
	Immagine  string   `json:"immagine,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.db == nil {
		return nil, utils.NewUnavailableError("Database non connesso. Contatta l'amministratore.")
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, utils.NewOperationError("impossibile leggere i prodotti", err)
	}

	return products, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if s.db == nil {
		return nil, utils.NewUnavailableError("Database non connesso. Contatta l'amministratore.")
	}

	// The gateway validates independently of the HTTP layer.
	if err := utils.ValidateStruct(req); err != nil {
		return nil, utils.NewValidationError("Nome e prezzo sono obbligatori")
	}

	categoria := req.Categoria
	if categoria == "" {
		categoria = models.DefaultCategory
	}

	product := &models.Product{
		Nome:      req.Nome,
		Prezzo:    *req.Prezzo,
		Categoria: categoria,
		Immagine:  req.Immagine,
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, utils.NewOperationError("impossibile salvare il prodotto", err)
	}

	return product, nil
}

// DeleteProduct removes a product by id. Deleting an id that does not exist
// is a silent no-op; removal of order lines referencing the product is
// handled by the store's ON DELETE CASCADE.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if s.db == nil {
		return utils.NewUnavailableError("Database non connesso. Contatta l'amministratore.")
	}

	if err := s.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return utils.NewOperationError("impossibile eliminare il prodotto", err)
	}

	return nil
}
