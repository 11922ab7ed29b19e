package services

import "storefront-service/models"

// DefaultCatalog is the product grid shown on the home and products pages.
func DefaultCatalog() []models.Product {
	return []models.Product{
		{Name: "Classic Aviator Frame", Price: 80.00, Img: "images/product-1.jpg"},
		{Name: "Round Tortoise Frame", Price: 65.00, Img: "images/product-2.jpg"},
		{Name: "Blue Light Lens", Price: 25.00, Img: "images/product-3.jpg"},
		{Name: "Polarized Sunglasses", Price: 120.00, Img: "images/product-4.jpg"},
		{Name: "Daily Contact Lens", Price: 35.50, Img: "images/product-5.jpg"},
		{Name: "Kids Flex Frame", Price: 45.00, Img: "images/product-6.jpg"},
	}
}
