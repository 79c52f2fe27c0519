package model

// CartLine represents a single product entry in the live cart. Title and
// price are copied from the catalogue at add time and are never re-fetched,
// so later catalogue edits do not alter a cart already in progress.
type CartLine struct {
	ProductID string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
}

// CartTotal returns the sum of price*qty over all lines. An empty cart
// totals zero.
func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * int64(l.Qty)
	}
	return total
}
