// internal/models/order.go
package models

import "time"

// DefaultOrderStatus is assigned to every new order. The status column is a
// free-form string: the kitchen display drives the lifecycle and there is no
// fixed transition set to enforce here.
const DefaultOrderStatus = "In preparazione"

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Stato         string      `json:"stato" gorm:"size:50;default:'In preparazione'"`
	DataCreazione time.Time   `json:"data_creazione" gorm:"autoCreateTime;index"`
	Items         []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderItem is one (product, quantity) line of an order. Lines are written
// only inside the order-creation transaction and never change afterwards.
// Both foreign keys cascade: dropping a product cleans up the lines that
// reference it (see DESIGN.md for the policy call).
type OrderItem struct {
	ID        uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint     `json:"order_id" gorm:"not null;index"`
	Order     *Order   `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductID uint     `json:"product_id" gorm:"not null;index"`
	Product   *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantita  int      `json:"quantita" gorm:"not null"`
}
