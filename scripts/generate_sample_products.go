package main

import (
	"encoding/json"
	"log"
	"os"
)

// generateSampleProducts writes a products.json default catalogue for
// local development.
func main() {
	products := []map[string]any{
		{
			"id":          "lq-cao-thu-a1",
			"title":       "Acc Liên Quân Cao Thủ",
			"description": "58 tướng, 42 skin, rank Cao Thủ",
			"price":       450000,
			"game":        "Liên Quân",
			"emoji":       "🛡️",
			"tags":        []string{"rank cao thủ", "nhiều skin"},
		},
		{
			"id":          "ff-kim-cuong-b2",
			"title":       "Acc Free Fire Kim Cương",
			"description": "Level 65, full súng nâng cấp",
			"price":       320000,
			"game":        "Free Fire",
			"emoji":       "🔥",
			"tags":        []string{"kim cương", "level cao"},
		},
		{
			"id":          "pubg-ace-c3",
			"title":       "Acc PUBG Mobile ACE",
			"description": "Rank ACE, nhiều outfit hiếm",
			"price":       600000,
			"game":        "PUBG Mobile",
			"emoji":       "🎯",
			"tags":        []string{"rank ace", "outfit hiếm"},
		},
		{
			"id":          "lq-tinh-anh-d4",
			"title":       "Acc Liên Quân Tinh Anh",
			"description": "30 tướng, rank Tinh Anh, giá mềm",
			"price":       150000,
			"game":        "Liên Quân",
			"emoji":       "⚔️",
			"tags":        []string{"rank tinh anh", "giá rẻ"},
		},
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode products: %v", err)
	}

	if err := os.WriteFile("products.json", data, 0o644); err != nil {
		log.Fatalf("Failed to write products.json: %v", err)
	}

	log.Printf("Wrote %d products to products.json", len(products))
}
