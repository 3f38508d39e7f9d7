package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/rentloop/rentloop-server/utils"
)

// GatewayOrder is the subset of the razorpay order we keep
type GatewayOrder struct {
	OrderID  string  `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func client() *razorpay.Client {
	return razorpay.NewClient(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
}

// CreateOrder registers a new order with razorpay. Amount is in the currency's
// smallest unit (paise for INR).
func CreateOrder(amount int64, currency string) (*GatewayOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid amount %d", amount)
	}
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  utils.NewReceiptID(),
	}
	order, err := client().Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	orderID, _ := order["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	resp := &GatewayOrder{OrderID: orderID, Currency: currency, Amount: float64(amount)}
	if amt, ok := order["amount"].(float64); ok {
		resp.Amount = amt
	}
	if cur, ok := order["currency"].(string); ok {
		resp.Currency = cur
	}
	return resp, nil
}

// Signature computes the razorpay payment signature for an order/payment pair
func Signature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature razorpay sent back after checkout.
// Comparison is constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	expected := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
