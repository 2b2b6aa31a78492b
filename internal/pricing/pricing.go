// Package pricing computes ticket totals. Prices are whole COP, so there is
// no sub-unit rounding to worry about.
package pricing

// Total returns the charge for quantity seats at unitPrice each. Both the
// create and the update path of the ledger call this with the price read
// inside the same transaction, so a stored total never reflects a stale price.
func Total(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}
