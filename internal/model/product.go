package model

// Product represents a purchasable game account listing in the catalogue.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"` // VND, whole currency units
	Game        string   `json:"game"`
	Emoji       string   `json:"emoji"`
	Tags        []string `json:"tags"`
}
