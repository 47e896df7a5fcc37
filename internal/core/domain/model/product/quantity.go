package product

import (
	"fmt"
	"math"

	"storefront/internal/pkg/errs"
)

// MaxQuantity is the largest quantity a cart or order line may carry.
// Quantity columns are 32-bit integers.
const MaxQuantity = math.MaxInt32

// ValidateQuantity checks that quantity lies in [1, MaxQuantity].
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

// LineAmount returns price times quantity. Both are expected to be positive;
// a product that does not fit in int64 is rejected.
func LineAmount(price int64, quantity int) (int64, error) {
	if quantity > 0 && price > math.MaxInt64/int64(quantity) {
		return 0, errs.NewValueIsOutOfRangeError("subtotal", fmt.Sprintf("%d x %d", price, quantity), 0, int64(math.MaxInt64))
	}
	return price * int64(quantity), nil
}

// AddAmounts returns the sum of non-negative amounts, rejecting a sum that does not fit in int64.
func AddAmounts(amounts ...int64) (int64, error) {
	var total int64
	for _, amount := range amounts {
		if amount > math.MaxInt64-total {
			return 0, errs.NewValueIsOutOfRangeError("total", fmt.Sprintf("%d + %d", total, amount), 0, int64(math.MaxInt64))
		}
		total += amount
	}
	return total, nil
}
