package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const (
		orderID   = "order_IluGWxBm9U8zJ8"
		paymentID = "pay_IluGWxBm9U8zJ9"
		secret    = "test_secret"
	)

	signature := Signature(orderID, paymentID, secret)

	cases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"valid signature", orderID, paymentID, signature, true},
		{"tampered payment id", orderID, "pay_other", signature, false},
		{"tampered signature", orderID, paymentID, signature + "00", false},
		{"wrong secret signature", orderID, paymentID, Signature(orderID, paymentID, "other"), false},
		{"empty signature", orderID, paymentID, "", false},
		{"empty order", "", paymentID, signature, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VerifySignature(tc.orderID, tc.paymentID, tc.signature, secret))
		})
	}
}
