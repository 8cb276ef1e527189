package handlers_test

import (
	"net/http"
	"sync"
	"testing"

	"superapp-api/config"
	"superapp-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroceryOrderDecrementsStockExactly(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)
	item := seedGroceryItem(t, "Milk", 50, 5)

	w := doJSON(t, r, http.MethodPost, "/api/grocery/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": item.ID, "quantity": 5}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 0, currentStock(t, item.ID))

	order := decodeBody(t, w)["order"].(map[string]interface{})
	assert.Equal(t, 250.0, order["total_amount"])

	// The shelf is empty now; one more unit must be refused and must
	// not drive the stock negative.
	w = doJSON(t, r, http.MethodPost, "/api/grocery/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": item.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", errCode(t, w))
	assert.Contains(t, decodeBody(t, w)["error"], "Milk")
	assert.Equal(t, 0, currentStock(t, item.ID))
}

func TestGroceryOrderConcurrentLastUnits(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	_, token := createUser(t, "buyer@example.com", models.RoleUser)
	item := seedGroceryItem(t, "Eggs", 60, 5)

	// Two orders race for 3 of the remaining 5 units. The conditional
	// decrement guarantees exactly one wins.
	results := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doJSON(t, r, http.MethodPost, "/api/grocery/orders", token, map[string]interface{}{
				"items": []map[string]interface{}{{"item_id": item.ID, "quantity": 3}},
			})
			results[i] = w.Code
		}(i)
	}
	wg.Wait()

	created, refused := 0, 0
	for _, code := range results {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			refused++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, refused)
	assert.Equal(t, 2, currentStock(t, item.ID))
}

func TestGroceryOrderRollsBackWhenAnyLineFails(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	user, token := createUser(t, "buyer@example.com", models.RoleUser)
	plenty := seedGroceryItem(t, "Rice", 80, 40)
	scarce := seedGroceryItem(t, "Saffron", 900, 1)

	w := doJSON(t, r, http.MethodPost, "/api/grocery/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": plenty.ID, "quantity": 2},
			{"item_id": scarce.ID, "quantity": 3},
		},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", errCode(t, w))

	// The whole request is atomic: the passing line's decrement is
	// rolled back and no order record survives.
	assert.Equal(t, 40, currentStock(t, plenty.ID))
	assert.Equal(t, 1, currentStock(t, scarce.ID))

	var count int64
	require.NoError(t, config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGroceryBrowseFilters(t *testing.T) {
	r := setupServer(t)
	enableAllModules(t)
	seedGroceryItem(t, "Milk", 50, 10)
	dairy := seedGroceryItem(t, "Cheese", 150, 10)
	dairy.Category = "Dairy"
	require.NoError(t, config.DB.Save(dairy).Error)

	w := doJSON(t, r, http.MethodGet, "/api/grocery/items?category=Dairy", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1.0, decodeBody(t, w)["count"])

	w = doJSON(t, r, http.MethodGet, "/api/grocery/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := decodeBody(t, w)["categories"].([]interface{})
	assert.Len(t, categories, 2)
}
