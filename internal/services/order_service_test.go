// internal/services/order_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiosco/pos-backend/internal/models"
	"github.com/chiosco/pos-backend/internal/utils"
)

func TestOrderService_CreateOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	panino := createTestProduct(t, db, "Panino", 5.50)
	acqua := createTestProduct(t, db, "Acqua", 1.00)

	orderID, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: panino.ID, Quantita: 2},
			{ProductID: acqua.ID, Quantita: 1},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, orderID)

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, models.DefaultOrderStatus, order.Stato)
	assert.False(t, order.DataCreazione.IsZero())

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&itemCount).Error)
	assert.EqualValues(t, 2, itemCount)
}

func TestOrderService_CreateOrder_UnknownProductRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	panino := createTestProduct(t, db, "Panino", 5.50)

	// The second line references a product that does not exist, so the
	// whole order must roll back, first line included.
	_, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: panino.ID, Quantita: 1},
			{ProductID: 9999, Quantita: 3},
		},
	})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindOperation, appErr.Kind)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	for _, req := range []*CreateOrderRequest{
		{},
		{Items: []OrderItemRequest{}},
	} {
		_, err := svc.CreateOrder(context.Background(), req)
		require.Error(t, err)

		appErr, ok := err.(*utils.AppError)
		require.True(t, ok)
		assert.Equal(t, utils.ErrKindValidation, appErr.Kind)
	}

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestOrderService_CreateOrder_NonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	panino := createTestProduct(t, db, "Panino", 5.50)

	_, err := svc.CreateOrder(context.Background(), &CreateOrderRequest{
		Items: []OrderItemRequest{{ProductID: panino.ID, Quantita: 0}},
	})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindValidation, appErr.Kind)
}

func TestOrderService_ListOrders_MostRecentFirstWithDetails(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	panino := createTestProduct(t, db, "Panino", 5.50)
	acqua := createTestProduct(t, db, "Acqua", 1.00)

	firstID, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Items: []OrderItemRequest{{ProductID: panino.ID, Quantita: 2}},
	})
	require.NoError(t, err)

	secondID, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Items: []OrderItemRequest{
			{ProductID: panino.ID, Quantita: 1},
			{ProductID: acqua.ID, Quantita: 3},
		},
	})
	require.NoError(t, err)

	// Push the first order into the past so the recency ordering does not
	// depend on timestamp resolution.
	require.NoError(t, db.Model(&models.Order{}).
		Where("id = ?", firstID).
		Update("data_creazione", time.Now().Add(-time.Hour)).Error)

	views, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, secondID, views[0].ID)
	assert.Equal(t, firstID, views[1].ID)

	// Each order carries exactly its own lines, in insertion order.
	require.Len(t, views[0].Dettagli, 2)
	assert.Equal(t, OrderDetail{Quantita: 1, Nome: "Panino", Prezzo: 5.50}, views[0].Dettagli[0])
	assert.Equal(t, OrderDetail{Quantita: 3, Nome: "Acqua", Prezzo: 1.00}, views[0].Dettagli[1])

	require.Len(t, views[1].Dettagli, 1)
	assert.Equal(t, OrderDetail{Quantita: 2, Nome: "Panino", Prezzo: 5.50}, views[1].Dettagli[0])
}

func TestOrderService_ListOrders_NoLinesYieldsEmptyDetails(t *testing.T) {
	db := setupTestDB(t)
	productSvc := NewProductService(db)
	orderSvc := NewOrderService(db)
	ctx := context.Background()

	panino := createTestProduct(t, db, "Panino", 5.50)

	orderID, err := orderSvc.CreateOrder(ctx, &CreateOrderRequest{
		Items: []OrderItemRequest{{ProductID: panino.ID, Quantita: 1}},
	})
	require.NoError(t, err)

	// Deleting the product cascades away the order's only line.
	require.NoError(t, productSvc.DeleteProduct(ctx, panino.ID))

	views, err := orderSvc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, orderID, views[0].ID)
	assert.NotNil(t, views[0].Dettagli)
	assert.Empty(t, views[0].Dettagli)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	panino := createTestProduct(t, db, "Panino", 5.50)
	orderID, err := svc.CreateOrder(ctx, &CreateOrderRequest{
		Items: []OrderItemRequest{{ProductID: panino.ID, Quantita: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateOrderStatus(ctx, orderID, &UpdateOrderStatusRequest{Stato: "Pronto"}))

	var order models.Order
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, "Pronto", order.Stato)
}

func TestOrderService_UpdateOrderStatus_UnknownIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	assert.NoError(t, svc.UpdateOrderStatus(context.Background(), 9999, &UpdateOrderStatusRequest{Stato: "Pronto"}))
}

func TestOrderService_UpdateOrderStatus_MissingStato(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	err := svc.UpdateOrderStatus(context.Background(), 1, &UpdateOrderStatusRequest{})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindValidation, appErr.Kind)
}

func TestOrderService_NoConnection(t *testing.T) {
	svc := NewOrderService(nil)

	_, err := svc.ListOrders(context.Background())
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindUnavailable, appErr.Kind)
}
