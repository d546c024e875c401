package payments_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"safarihub/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCharge(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/charges", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"token": "ch_test_42"})
	}))
	defer server.Close()

	client := payments.NewClient(server.URL)
	token, err := client.CreateCharge(context.Background(), 36150, "USD", "booking-1", []payments.LineItem{
		{Name: "Gorilla Trek", Quantity: 3, UnitAmount: 12050},
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_test_42", token)

	assert.Equal(t, float64(36150), received["amount"])
	assert.Equal(t, "USD", received["currency"])
	assert.Equal(t, "booking-1", received["reference"])
}

func TestCreateChargeProcessorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "declined", http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := payments.NewClient(server.URL)
	_, err := client.CreateCharge(context.Background(), 100, "USD", "booking-2", nil)
	assert.ErrorContains(t, err, "402")
}
