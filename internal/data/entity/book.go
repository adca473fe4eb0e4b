package entity

import "math"

type Book struct {
	ID            int64   `db:"id"`
	Code          string  `db:"code"`
	Name          string  `db:"name"`
	Publisher     string  `db:"publisher"`
	Quantity      int     `db:"quantity"`
	ImportedPrice float64 `db:"imported_price"`
	SellPrice     float64 `db:"sell_price"`
}

// DeriveSellPrice computes the default sell price from the imported price:
// a 10% markup rounded to two decimals.
func DeriveSellPrice(importedPrice float64) float64 {
	return math.Round(importedPrice*1.1*100) / 100
}
