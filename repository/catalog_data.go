package repository

import (
	"luxelane/models"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// SeedProducts returns the demo catalog. The data is static and loaded once
// at startup.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "p1",
			Name:          "Aurora Wireless Headphones",
			Category:      "Audio",
			Price:         price("249.99"),
			OriginalPrice: pricePtr("299.99"),
			Rating:        4.7,
			ReviewCount:   1284,
			Images: []string{
				"/images/aurora-headphones-1.jpg",
				"/images/aurora-headphones-2.jpg",
				"/images/aurora-headphones-3.jpg",
			},
			Description: "Over-ear wireless headphones with adaptive noise cancellation and 40-hour battery life.",
			Details: []string{
				"Adaptive active noise cancellation",
				"40-hour battery life, USB-C fast charge",
				"Bluetooth 5.3 with multipoint pairing",
				"Memory foam ear cushions",
			},
			Stock: 34,
			Reviews: []models.Review{
				{ID: 1, Author: "Maya R.", Rating: 5, Comment: "Best headphones I've owned. The noise cancellation is unreal.", Date: "2025-05-12"},
				{ID: 2, Author: "Tom K.", Rating: 4, Comment: "Great sound, slightly tight fit out of the box.", Date: "2025-06-03"},
			},
		},
		{
			ID:          "p2",
			Name:        "Meridian Leather Watch",
			Category:    "Accessories",
			Price:       price("189.00"),
			Rating:      4.5,
			ReviewCount: 512,
			Images: []string{
				"/images/meridian-watch-1.jpg",
				"/images/meridian-watch-2.jpg",
			},
			Description: "Minimalist automatic watch with a full-grain Italian leather strap and sapphire glass.",
			Details: []string{
				"Automatic movement, 42-hour power reserve",
				"Sapphire crystal glass",
				"Full-grain Italian leather strap",
				"5 ATM water resistance",
			},
			Stock: 18,
			Reviews: []models.Review{
				{ID: 1, Author: "Elena P.", Rating: 5, Comment: "Elegant and understated. Wear it every day.", Date: "2025-04-22"},
			},
		},
		{
			ID:            "p3",
			Name:          "Voyager Canvas Backpack",
			Category:      "Bags",
			Price:         price("89.99"),
			OriginalPrice: pricePtr("119.99"),
			Rating:        4.3,
			ReviewCount:   867,
			Images: []string{
				"/images/voyager-backpack-1.jpg",
				"/images/voyager-backpack-2.jpg",
			},
			Description: "Water-resistant waxed canvas backpack with a padded 16\" laptop sleeve.",
			Details: []string{
				"Waxed canvas, water resistant",
				"Padded 16\" laptop compartment",
				"YKK zippers throughout",
				"25L capacity",
			},
			Stock: 52,
			Reviews: []models.Review{
				{ID: 1, Author: "Chris D.", Rating: 4, Comment: "Sturdy and roomy. Straps could be softer.", Date: "2025-03-30"},
				{ID: 2, Author: "Ana L.", Rating: 5, Comment: "Survived a month of daily commuting in the rain.", Date: "2025-07-14"},
			},
		},
		{
			ID:          "p4",
			Name:        "Solstice Ceramic Mug Set",
			Category:    "Home",
			Price:       price("39.99"),
			Rating:      4.8,
			ReviewCount: 233,
			Images: []string{
				"/images/solstice-mugs-1.jpg",
			},
			Description: "Set of four hand-glazed stoneware mugs in muted seasonal tones.",
			Details: []string{
				"Set of 4, 350ml each",
				"Hand-glazed stoneware",
				"Dishwasher and microwave safe",
			},
			Stock: 75,
			Reviews: []models.Review{
				{ID: 1, Author: "Jun W.", Rating: 5, Comment: "The glaze is gorgeous in person.", Date: "2025-06-20"},
			},
		},
		{
			ID:          "p5",
			Name:        "Nimbus Desk Lamp",
			Category:    "Home",
			Price:       price("64.50"),
			Rating:      4.2,
			ReviewCount: 148,
			Images: []string{
				"/images/nimbus-lamp-1.jpg",
				"/images/nimbus-lamp-2.jpg",
			},
			Description: "Dimmable LED desk lamp with wireless charging base and adjustable color temperature.",
			Details: []string{
				"3 color temperatures, stepless dimming",
				"10W Qi wireless charging base",
				"Foldable aluminium arm",
			},
			Stock: 41,
			Reviews: []models.Review{
				{ID: 1, Author: "Priya S.", Rating: 4, Comment: "Charging pad is handy, light is bright and even.", Date: "2025-05-02"},
			},
		},
	}
}
