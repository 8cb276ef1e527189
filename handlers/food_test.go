package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"superapp-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceFoodOrderComputesTotalServerSide(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)
	rest := seedRestaurant(t, 100, 50)

	// The request carries a bogus price per line; the server must
	// ignore it and snapshot the catalog price instead.
	w := doJSON(t, r, http.MethodPost, "/api/food/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": rest.Menu[0].ID, "quantity": 2, "price": 1},
			{"item_id": rest.Menu[1].ID, "quantity": 1, "price": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	order := body["order"].(map[string]interface{})
	assert.Equal(t, 250.0, order["total_amount"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "pending", order["payment_status"])
	assert.Equal(t, "cash", order["payment_method"])
	assert.Equal(t, "42 Default Street", order["delivery_address"]) // profile default

	items := order["items"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, 100.0, first["price"])
}

func TestPlaceFoodOrderEmptyCart(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/food/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMPTY_CART", errCode(t, w))
}

func TestPlaceFoodOrderUnknownItem(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/food/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": 9999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errCode(t, w))
}

func TestOrderStatusLifecycle(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)
	rest := seedRestaurant(t, 100)

	w := doJSON(t, r, http.MethodPost, "/api/food/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": rest.Menu[0].ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeBody(t, w)["order"].(map[string]interface{})["id"].(float64))
	statusURL := fmt.Sprintf("/api/food/orders/%d/status", orderID)

	// Jumping straight to delivered is rejected.
	w = doJSON(t, r, http.MethodPut, statusURL, token, map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_STATE", errCode(t, w))

	// Walk the legal path; only delivered has side effects.
	for _, next := range []string{"confirmed", "preparing", "out_for_delivery"} {
		w = doJSON(t, r, http.MethodPut, statusURL, token, map[string]string{"status": next})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		order := decodeBody(t, w)["order"].(map[string]interface{})
		assert.Equal(t, "pending", order["payment_status"])
		assert.Nil(t, order["delivered_at"])
	}

	w = doJSON(t, r, http.MethodPut, statusURL, token, map[string]string{"status": "delivered"})
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeBody(t, w)["order"].(map[string]interface{})
	assert.Equal(t, "paid", order["payment_status"])
	assert.NotNil(t, order["delivered_at"])

	// Terminal: nothing moves out of delivered.
	w = doJSON(t, r, http.MethodPut, statusURL, token, map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestOrderCancellableFromAnyNonTerminalState(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)
	rest := seedRestaurant(t, 100)

	w := doJSON(t, r, http.MethodPost, "/api/food/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": rest.Menu[0].ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeBody(t, w)["order"].(map[string]interface{})["id"].(float64))
	statusURL := fmt.Sprintf("/api/food/orders/%d/status", orderID)

	w = doJSON(t, r, http.MethodPut, statusURL, token, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPut, statusURL, token, map[string]string{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeBody(t, w)["order"].(map[string]interface{})
	assert.Equal(t, "cancelled", order["status"])
	assert.Equal(t, "pending", order["payment_status"])
}

func TestGetOrderOwnership(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, ownerToken := createUser(t, "owner@example.com", models.RoleUser)
	_, otherToken := createUser(t, "other@example.com", models.RoleUser)
	rest := seedRestaurant(t, 100)

	w := doJSON(t, r, http.MethodPost, "/api/food/orders", ownerToken, map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": rest.Menu[0].ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(decodeBody(t, w)["order"].(map[string]interface{})["id"].(float64))

	// A stranger sees not-found, not forbidden, so existence leaks nothing.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/food/orders/%d", orderID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errCode(t, w))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/food/orders/%d", orderID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
