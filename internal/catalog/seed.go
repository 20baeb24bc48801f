package catalog

// Seed returns the demo catalog every session starts with.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Vintage Leather Jacket",
			Description: "Classic brown leather jacket, size M. Well-maintained and stylish. Perfect for cool evenings or adding a retro touch to your outfit.",
			Price:       120,
			Seller:      "ThaboM",
			ImageURL:    "https://picsum.photos/seed/jacket/400/300",
			Category:    "Fashion",
			Keywords:    "leather, vintage, jacket, brown, retro",
		},
		{
			ID:          "2",
			Name:        "Handmade Ceramic Mug Set",
			Description: "Unique set of two handcrafted ceramic mugs with a vibrant blue glaze. Ideal for your morning coffee or as a thoughtful gift.",
			Price:       45,
			Seller:      "SarahL",
			ImageURL:    "https://picsum.photos/seed/mugset/400/300",
			Category:    "Home Goods",
			Keywords:    "ceramic, handmade, mug, blue, artisan, gift",
		},
		{
			ID:          "3",
			Name:        "Rare Comic Books Collection",
			Description: "A curated collection of over 50 rare and vintage comic books spanning various iconic series. A must-have for collectors.",
			Price:       250,
			Seller:      "ComicFanatic",
			ImageURL:    "https://picsum.photos/seed/comics/400/300",
			Category:    "Collectibles",
			Keywords:    "comics, vintage, books, collection, rare, superhero",
		},
		{
			ID:          "4",
			Name:        "Mountain Bike - Like New",
			Description: "Hardly used mountain bike with premium components. Ready for your next adventure on the trails. Size L, 21 speeds.",
			Price:       350,
			Seller:      "AdventureSeeker",
			ImageURL:    "https://picsum.photos/seed/bike/400/300",
			Category:    "Sports & Outdoors",
			Keywords:    "mountain bike, bicycle, sports, outdoor, trails",
		},
	}
}
