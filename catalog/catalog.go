package catalog

import "github.com/Aditya231356/Carpenter-Website/entities"

// DefaultProducts returns the catalog used to seed storage on first start and
// as the read fallback when the products collection is missing or unreadable.
func DefaultProducts() []entities.Product {
	return []entities.Product{
		{
			Id:          1,
			Name:        "Teak Wood Bed",
			Description: "King size bed with storage, made from premium teak wood",
			Category:    "furniture",
			Quality:     "Premium Teak Wood",
			Price:       45000,
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
		},
		{
			Id:          2,
			Name:        "Sheesham Dining Table",
			Description: "6-seater dining table with matching chairs",
			Category:    "furniture",
			Quality:     "Solid Sheesham Wood",
			Price:       35000,
			Image:       "https://images.unsplash.com/photo-1556228453-efd6c1ff04f6?w=400&h=300&fit=crop",
		},
		{
			Id:          3,
			Name:        "Wooden Main Door",
			Description: "Carved wooden main entrance door with security features",
			Category:    "doors",
			Quality:     "Seasoned Teak Wood",
			Price:       28000,
			Image:       "https://images.unsplash.com/photo-1600585154340-043cd4475cdc?w=400&h=300&fit=crop",
		},
		{
			Id:          4,
			Name:        "Wardrobe Unit",
			Description: "Walk-in wardrobe with mirror and storage",
			Category:    "furniture",
			Quality:     "Engineered Wood",
			Price:       32000,
			Image:       "https://images.unsplash.com/photo-1567538096630-e0c55bd6374c?w=400&h=300&fit=crop",
		},
		{
			Id:          5,
			Name:        "Custom Bookshelf",
			Description: "Wall-mounted bookshelf, custom size",
			Category:    "custom",
			Quality:     "Plywood with Laminate",
			Price:       15000,
			Image:       "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=400&h=300&fit=crop",
		},
		{
			Id:          6,
			Name:        "French Window",
			Description: "Wooden frame window with glass panes",
			Category:    "doors",
			Quality:     "Sal Wood",
			Price:       12000,
			Image:       "https://images.unsplash.com/photo-1519710164239-da123dc03ef4?w=400&h=300&fit=crop",
		},
	}
}

// DefaultGallery returns the showcase images for the gallery page.
func DefaultGallery() []entities.GalleryItem {
	return []entities.GalleryItem{
		{
			Id:          1,
			Title:       "Luxury Bedroom Set",
			Description: "Complete bedroom furniture including bed, wardrobe, and nightstands",
			Category:    "furniture",
			Image:       "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=600&h=400&fit=crop",
		},
		{
			Id:          2,
			Title:       "Modern Kitchen Cabinets",
			Description: "Custom kitchen cabinets with soft-close drawers",
			Category:    "custom",
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=600&h=400&fit=crop",
		},
		{
			Id:          3,
			Title:       "Office Conference Room",
			Description: "Complete office furniture setup for conference room",
			Category:    "commercial",
			Image:       "https://images.unsplash.com/photo-1497366754035-f200968a6e72?w=600&h=400&fit=crop",
		},
		{
			Id:          4,
			Title:       "Traditional Main Door",
			Description: "Carved wooden main door with brass fittings",
			Category:    "doors",
			Image:       "https://images.unsplash.com/photo-1600585154340-043cd4475cdc?w=600&h=400&fit=crop",
		},
		{
			Id:          5,
			Title:       "Antique Restoration",
			Description: "Restoration of 100-year-old antique wardrobe",
			Category:    "restoration",
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=600&h=400&fit=crop",
		},
		{
			Id:          6,
			Title:       "Hotel Room Furniture",
			Description: "Complete furniture set for luxury hotel room",
			Category:    "commercial",
			Image:       "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=600&h=400&fit=crop",
		},
	}
}
