package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order. It is tracked
// independently of the order workflow: a failed payment blocks progression
// but does not cancel the order.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of a newly placed order.
	PaymentPending

	// PaymentCompleted indicates the payment succeeded.
	PaymentCompleted

	// PaymentFailed indicates the payment failed. The order stays in its
	// current workflow status and cannot be confirmed until payment succeeds.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "UNKNOWN",
		PaymentPending:   "PENDING",
		PaymentCompleted: "COMPLETED",
		PaymentFailed:    "FAILED",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "PENDING",
		PaymentCompleted: "COMPLETED",
		PaymentFailed:    "FAILED",
	}
}

// PaymentStatusFromString parses a payment status from its canonical
// wire representation ("PENDING", "COMPLETED", "FAILED").
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the canonical name of the payment status.
// It implements the fmt.Stringer interface and is safe to call on
// any value, including invalid ones, which render as "UNKNOWN".
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
