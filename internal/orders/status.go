package orders

// OrderStatus represents the lifecycle state of a ticket order
type OrderStatus string

const (
	OrderStatusSuccess                OrderStatus = "SUCCESS"
	OrderStatusCancelledByAdmin       OrderStatus = "CANCELLED_BY_ADMIN"
	OrderStatusCancelledByParticipant OrderStatus = "CANCELLED_BY_PARTICIPANT"
)

// IsCancelled reports whether the order is in a cancelled state
func (s OrderStatus) IsCancelled() bool {
	return s == OrderStatusCancelledByAdmin || s == OrderStatusCancelledByParticipant
}

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
)

// IsValidPaymentMethod reports whether the given method is supported
func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodCreditCard, PaymentMethodDebitCard:
		return true
	default:
		return false
	}
}
