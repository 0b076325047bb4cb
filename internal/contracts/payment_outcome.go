package contracts

// PaymentOutcome is the normalized result of a payment event. Producers
// historically emitted two vocabularies for the same outcome ("SUCCESS"
// vs "PAYMENT_SUCCESS"); ParsePaymentOutcome accepts both so consumers
// never compare raw strings.
type PaymentOutcome int

const (
	// PaymentOutcomeFailure is any payment event that is not a success.
	PaymentOutcomeFailure PaymentOutcome = iota

	// PaymentOutcomeSuccess is a completed payment.
	PaymentOutcomeSuccess
)

// ParsePaymentOutcome normalizes a payment event's status or event type.
// Unrecognized values are treated as failure: an order must never be
// confirmed on a status we do not positively recognize as success.
func ParsePaymentOutcome(status string) PaymentOutcome {
	switch status {
	case "SUCCESS", "PAYMENT_SUCCESS", "COMPLETED":
		return PaymentOutcomeSuccess
	default:
		return PaymentOutcomeFailure
	}
}

// IsSuccess reports whether the outcome is a successful payment.
func (o PaymentOutcome) IsSuccess() bool {
	return o == PaymentOutcomeSuccess
}

// String implements fmt.Stringer.
func (o PaymentOutcome) String() string {
	if o == PaymentOutcomeSuccess {
		return "SUCCESS"
	}
	return "FAILED"
}
