package request

// PostPaymentRequest records an abono against a shipment's balance. Amounts
// above the outstanding balance are capped by the core.
type PostPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
