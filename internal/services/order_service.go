// internal/services/order_service.go
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/chiosco/pos-backend/internal/database"
	"github.com/chiosco/pos-backend/internal/models"
	"github.com/chiosco/pos-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantita  int  `json:"quantita" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Stato string `json:"stato" validate:"required"`
}

// OrderDetail is one line of an order as the frontend renders it: the
// quantity plus the referenced product's name and price from the join.
type OrderDetail struct {
	Quantita int     `json:"quantita"`
	Nome     string  `json:"nome"`
	Prezzo   float64 `json:"prezzo"`
}

type OrderView struct {
	ID            uint          `json:"id"`
	Stato         string        `json:"stato"`
	DataCreazione time.Time     `json:"data_creazione"`
	Dettagli      []OrderDetail `json:"dettagli"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder inserts the order header and one line per item in a single
// transaction. A failing line insert (unknown product_id included) rolls the
// whole order back: readers never see a partial order.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (uint, error) {
	if s.db == nil {
		return 0, utils.NewUnavailableError("Database non connesso. Contatta l'amministratore.")
	}

	if err := utils.ValidateStruct(req); err != nil {
		return 0, utils.NewValidationError("Nessun prodotto nell'ordine")
	}

	var orderID uint
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		order := &models.Order{Stato: models.DefaultOrderStatus}
		if err := tx.Create(order).Error; err != nil {
			return utils.NewOperationError("impossibile creare l'ordine", err)
		}

		for _, item := range req.Items {
			line := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantita:  item.Quantita,
			}
			if err := tx.Create(line).Error; err != nil {
				return utils.NewOperationError("impossibile salvare le righe dell'ordine", err)
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		if _, ok := err.(*utils.AppError); ok {
			return 0, err
		}
		return 0, utils.NewOperationError("impossibile creare l'ordine", err)
	}

	return orderID, nil
}

// ListOrders returns every order most-recent-first, each with its line-item
// details. One query fetches the headers, a second joins order_items with
// products for all orders at once, and the lines are grouped in memory.
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderView, error) {
	if s.db == nil {
		return nil, utils.NewUnavailableError("Database non connesso. Contatta l'amministratore.")
	}

	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Order("data_creazione DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, utils.NewOperationError("impossibile leggere gli ordini", err)
	}

	type detailRow struct {
		OrderID  uint
		Quantita int
		Nome     string
		Prezzo   float64
	}

	var rows []detailRow
	if err := s.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.order_id, order_items.quantita, products.nome, products.prezzo").
		Joins("JOIN products ON products.id = order_items.product_id").
		Order("order_items.id").
		Scan(&rows).Error; err != nil {
		return nil, utils.NewOperationError("impossibile leggere i dettagli degli ordini", err)
	}

	detailsByOrder := make(map[uint][]OrderDetail, len(orders))
	for _, row := range rows {
		detailsByOrder[row.OrderID] = append(detailsByOrder[row.OrderID], OrderDetail{
			Quantita: row.Quantita,
			Nome:     row.Nome,
			Prezzo:   row.Prezzo,
		})
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		dettagli := detailsByOrder[order.ID]
		if dettagli == nil {
			dettagli = []OrderDetail{}
		}
		views = append(views, OrderView{
			ID:            order.ID,
			Stato:         order.Stato,
			DataCreazione: order.DataCreazione,
			Dettagli:      dettagli,
		})
	}

	return views, nil
}

// UpdateOrderStatus sets the status of an order. The value is free-form and
// an unknown id is a no-op, matching the kitchen display's expectations.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, req *UpdateOrderStatusRequest) error {
	if s.db == nil {
		return utils.NewUnavailableError("Database non connesso. Contatta l'amministratore.")
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.NewValidationError("Stato mancante")
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("stato", req.Stato).Error; err != nil {
		return utils.NewOperationError("impossibile aggiornare lo stato dell'ordine", err)
	}

	return nil
}
