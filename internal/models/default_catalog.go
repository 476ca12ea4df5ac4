package models

import "github.com/shopspring/decimal"

// CatalogVersion 内置商品目录版本，变更默认商品时递增
const CatalogVersion = "2.0"

// DefaultProducts 返回内置默认商品目录（每次调用返回新副本）
func DefaultProducts() []Product {
	products := make([]Product, len(defaultProducts))
	for i := range defaultProducts {
		products[i] = defaultProducts[i].Clone()
	}
	return products
}

func seedProduct(id uint, name string, price int64, description, category string, stock int, rating float64, reviewCount int, image string) Product {
	return Product{
		ID:          id,
		Name:        name,
		Price:       NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Description: description,
		Category:    category,
		Stock:       &stock,
		Rating:      &rating,
		ReviewCount: &reviewCount,
		Image:       image,
	}
}

const unsplash = "https://images.unsplash.com/"
const unsplashQuery = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=600&q=80"

var defaultProducts = []Product{
	seedProduct(1, "Wireless Bluetooth Headphones", 20,
		"Premium wireless headphones with noise cancellation, 30-hour battery life, and crystal-clear sound quality. Perfect for music lovers and professionals.",
		"Electronics", 15, 4.5, 24, unsplash + "photo-1505740420928-5e560c06d30e" + unsplashQuery),
	seedProduct(2, "Smart Watch Pro", 30,
		"Advanced smartwatch with fitness tracking, heart rate monitor, GPS, and smartphone notifications. Water-resistant design for active lifestyles.",
		"Electronics", 8, 4.8, 42, unsplash + "photo-1523275335684-37898b6baf30" + unsplashQuery),
	seedProduct(3, "Classic Denim Jacket", 40,
		"Timeless denim jacket made from premium cotton. Perfect fit with modern styling. Ideal for casual wear and all seasons.",
		"Clothing", 20, 4.2, 18, unsplash + "photo-1551028719-00167b16eac5" + unsplashQuery),
	seedProduct(4, "Designer Leather Jacket", 50,
		"Luxury genuine leather jacket with premium craftsmanship. Stylish design that never goes out of fashion. Limited edition piece.",
		"Clothing", 0, 4.9, 56, unsplash + "photo-1551028719-00167b16eac5" + unsplashQuery),
	seedProduct(5, "Premium Leather Wallet", 60,
		"Handcrafted genuine leather wallet with multiple card slots and cash compartment. Slim design fits perfectly in your pocket.",
		"Accessories", 12, 4.6, 31, unsplash + "photo-1584917865442-de89df7479c5" + unsplashQuery),
	seedProduct(6, "Sunglasses Aviator", 70,
		"Classic aviator sunglasses with UV protection and polarized lenses. Stylish design with durable frame. Perfect for outdoor activities.",
		"Accessories", 5, 4.7, 28, unsplash + "photo-1572635196232-ad762de95777" + unsplashQuery),
	seedProduct(7, "iPhone 15 Pro", 999,
		"Latest iPhone with A17 Pro chip, titanium design, and advanced camera system. 256GB storage with ProMotion display.",
		"Electronics", 25, 4.9, 342, unsplash + "photo-1592750475338-74b7b21085ab" + unsplashQuery),
	seedProduct(8, "Samsung Galaxy S24", 899,
		"Premium Android smartphone with Snapdragon 8 Gen 3, 120Hz AMOLED display, and 200MP camera. 256GB storage.",
		"Electronics", 18, 4.8, 289, unsplash + "photo-1511707171634-5f897ff02aa9" + unsplashQuery),
	seedProduct(9, "MacBook Pro 16", 2499,
		"Powerful laptop with M3 Pro chip, 16GB RAM, 512GB SSD, and Liquid Retina XDR display. Perfect for professionals.",
		"Electronics", 12, 4.9, 156, unsplash + "photo-1541807084-5c52b6b3adef" + unsplashQuery),
	seedProduct(10, "Dell XPS 15", 1899,
		"High-performance laptop with Intel i7, 16GB RAM, 1TB SSD, and 4K OLED display. Ideal for creative work.",
		"Electronics", 15, 4.7, 203, unsplash + "photo-1496181133206-80ce9b88a853" + unsplashQuery),
	seedProduct(11, "iPad Air", 599,
		"Versatile tablet with M2 chip, 10.9-inch Liquid Retina display, and Apple Pencil support. 256GB storage.",
		"Electronics", 30, 4.8, 445, unsplash + "photo-1544244015-0df4b3ffc6b0" + unsplashQuery),
	seedProduct(12, "Sony WH-1000XM5", 399,
		"Premium noise-cancelling headphones with 30-hour battery, LDAC support, and exceptional sound quality.",
		"Electronics", 22, 4.9, 567, unsplash + "photo-1505740420928-5e560c06d30e" + unsplashQuery),
	seedProduct(13, "Canon EOS R6", 2499,
		"Professional mirrorless camera with 20MP sensor, 4K video, and advanced autofocus system. Perfect for photography.",
		"Electronics", 8, 4.8, 234, unsplash + "photo-1606983340126-99ab4feaa64a" + unsplashQuery),
	seedProduct(14, "Nintendo Switch OLED", 349,
		"Gaming console with 7-inch OLED screen, improved audio, and 64GB storage. Includes Joy-Con controllers.",
		"Electronics", 20, 4.7, 678, unsplash + "photo-1606144042614-b2417e99c4e3" + unsplashQuery),
	seedProduct(15, "PlayStation 5", 499,
		"Next-gen gaming console with ray tracing, 4K gaming, and ultra-fast SSD. Includes DualSense controller.",
		"Electronics", 5, 4.9, 892, unsplash + "photo-1606813907291-d86efa9b94db" + unsplashQuery),
	seedProduct(16, "AirPods Pro", 249,
		"Wireless earbuds with active noise cancellation, spatial audio, and MagSafe charging case. 6-hour battery.",
		"Electronics", 35, 4.8, 1234, unsplash + "photo-1606220945770-b5b6c2c55bf1" + unsplashQuery),
	seedProduct(17, "Nike Air Max 270", 150,
		"Comfortable running shoes with Air Max cushioning, breathable mesh upper, and durable rubber outsole.",
		"Clothing", 45, 4.6, 456, unsplash + "photo-1542291026-7eec264c27ff" + unsplashQuery),
	seedProduct(18, "Adidas Ultraboost 22", 180,
		"Premium running shoes with Boost midsole, Primeknit upper, and Continental rubber outsole for superior grip.",
		"Clothing", 32, 4.7, 389, unsplash + "photo-1606107557195-0e29a4b5b4aa" + unsplashQuery),
	seedProduct(19, "Levi's 501 Jeans", 89,
		"Classic straight-fit jeans made from 100% cotton denim. Timeless style with button fly closure.",
		"Clothing", 60, 4.5, 567, unsplash + "photo-1542272604-787c3835535d" + unsplashQuery),
	seedProduct(20, "Cotton T-Shirt Pack", 29,
		"Pack of 3 basic cotton t-shirts in assorted colors. Soft, breathable fabric perfect for everyday wear.",
		"Clothing", 100, 4.4, 234, unsplash + "photo-1521572163474-6864f9cf17ab" + unsplashQuery),
	seedProduct(21, "Wool Winter Coat", 199,
		"Warm winter coat made from premium wool blend. Features quilted lining and detachable hood for extra warmth.",
		"Clothing", 25, 4.6, 178, unsplash + "photo-1539533018447-63fcce2678e3" + unsplashQuery),
	seedProduct(22, "Formal Dress Shirt", 59,
		"Classic white dress shirt with button-down collar. Perfect for business meetings and formal occasions.",
		"Clothing", 40, 4.5, 267, unsplash + "photo-1594938291221-94f18cbb7080" + unsplashQuery),
	seedProduct(23, "Running Shorts", 35,
		"Lightweight running shorts with moisture-wicking fabric and built-in compression liner. Perfect for workouts.",
		"Clothing", 55, 4.4, 189, unsplash + "photo-1551028719-00167b16eac5" + unsplashQuery),
	seedProduct(24, "Hooded Sweatshirt", 49,
		"Comfortable hooded sweatshirt made from soft cotton blend. Features kangaroo pocket and drawstring hood.",
		"Clothing", 38, 4.6, 312, unsplash + "photo-1556821840-3a63f95609a7" + unsplashQuery),
	seedProduct(25, "Leather Dress Shoes", 129,
		"Classic black leather dress shoes with polished finish. Comfortable insoles and durable construction.",
		"Clothing", 28, 4.7, 445, unsplash + "photo-1549298916-b41d501d3772" + unsplashQuery),
	seedProduct(26, "Casual Sneakers", 79,
		"Versatile casual sneakers with canvas upper and rubber sole. Perfect for everyday wear and light activities.",
		"Clothing", 50, 4.5, 523, unsplash + "photo-1460353581641-37baddab0fa2" + unsplashQuery),
	seedProduct(27, "Designer Handbag", 299,
		"Luxury handbag made from genuine leather with gold-tone hardware. Spacious interior with multiple compartments.",
		"Accessories", 15, 4.8, 234, unsplash + "photo-1590874103328-eac38a683ce7" + unsplashQuery),
	seedProduct(28, "Leather Belt", 45,
		"Genuine leather belt with classic buckle. Available in black and brown. Adjustable sizing for perfect fit.",
		"Accessories", 42, 4.6, 189, unsplash + "photo-1624222247344-550fb60583fd" + unsplashQuery),
	seedProduct(29, "Silver Watch", 199,
		"Elegant silver watch with leather strap and minimalist design. Water-resistant up to 50 meters.",
		"Accessories", 20, 4.7, 356, unsplash + "photo-1523275335684-37898b6baf30" + unsplashQuery),
	seedProduct(30, "Backpack", 89,
		"Durable backpack with laptop compartment, multiple pockets, and padded shoulder straps. Perfect for work or travel.",
		"Accessories", 35, 4.6, 478, unsplash + "photo-1553062407-98eeb64c6a62" + unsplashQuery),
	seedProduct(31, "Baseball Cap", 25,
		"Classic baseball cap with adjustable strap and embroidered logo. Available in multiple colors.",
		"Accessories", 70, 4.4, 267, unsplash + "photo-1588850561407-ed78c282e89b" + unsplashQuery),
	seedProduct(32, "Scarf Set", 35,
		"Set of 3 soft scarves in different colors and patterns. Made from premium materials for warmth and style.",
		"Accessories", 48, 4.5, 189, unsplash + "photo-1601925260368-ae2f83cf8b7f" + unsplashQuery),
	seedProduct(33, "Gold Necklace", 249,
		"Elegant gold-plated necklace with pendant. Hypoallergenic and tarnish-resistant. Perfect for special occasions.",
		"Accessories", 18, 4.7, 145, unsplash + "photo-1515562141207-7a88fb7ce338" + unsplashQuery),
	seedProduct(34, "Travel Luggage Set", 299,
		"3-piece luggage set with spinner wheels and TSA locks. Durable construction for frequent travelers.",
		"Accessories", 12, 4.8, 234, unsplash + "photo-1565026057447-bd90a52d4b3a" + unsplashQuery),
	seedProduct(35, "Coffee Maker", 129,
		"Programmable coffee maker with 12-cup capacity, auto-shutoff, and reusable filter. Perfect for home or office.",
		"Other", 28, 4.6, 567, unsplash + "photo-1517668808823-b4c994d44b9f" + unsplashQuery),
	seedProduct(36, "Stand Mixer", 399,
		"Professional stand mixer with multiple attachments. Powerful motor and durable construction for baking enthusiasts.",
		"Other", 15, 4.8, 289, unsplash + "photo-1556910103-1c02745aae4d" + unsplashQuery),
	seedProduct(37, "Air Fryer", 149,
		"Digital air fryer with 5.5-quart capacity and multiple cooking presets. Healthier cooking with less oil.",
		"Other", 32, 4.7, 678, unsplash + "photo-1608039829573-80364e8a43a5" + unsplashQuery),
	seedProduct(38, "Blender", 79,
		"High-speed blender with 1500W motor and glass jar. Perfect for smoothies, soups, and sauces.",
		"Other", 40, 4.5, 445, unsplash + "photo-1574269909862-7e1d70bb8078" + unsplashQuery),
	seedProduct(39, "Yoga Mat", 35,
		"Premium yoga mat with non-slip surface and extra cushioning. Lightweight and easy to carry.",
		"Other", 55, 4.6, 523, unsplash + "photo-1601925260368-ae2f83cf8b7f" + unsplashQuery),
	seedProduct(40, "Dumbbell Set", 149,
		"Adjustable dumbbell set with weights from 5-50 lbs. Perfect for home workouts and strength training.",
		"Other", 22, 4.7, 334, unsplash + "photo-1571019613454-1cb2f99b2d8b" + unsplashQuery),
	seedProduct(41, "Bicycle", 499,
		"Mountain bike with 21-speed gears, front suspension, and disc brakes. Perfect for trails and city riding.",
		"Other", 10, 4.8, 189, unsplash + "photo-1558618047-3c8c76ca7d13" + unsplashQuery),
	seedProduct(42, "Tent", 199,
		"4-person camping tent with waterproof coating and easy setup. Includes rainfly and carrying bag.",
		"Other", 18, 4.6, 267, unsplash + "photo-1478131143081-80f7f84ca84d" + unsplashQuery),
	seedProduct(43, "Sleeping Bag", 89,
		"Warm sleeping bag rated for temperatures down to 20°F. Lightweight and compressible for easy packing.",
		"Other", 30, 4.5, 234, unsplash + "photo-1504280390367-361c6d9f38f4" + unsplashQuery),
	seedProduct(44, "Guitar", 299,
		"Acoustic guitar with spruce top and mahogany back. Perfect for beginners and intermediate players.",
		"Other", 15, 4.7, 456, unsplash + "photo-1493225457124-a3eb161ffa5f" + unsplashQuery),
	seedProduct(45, "Piano Keyboard", 399,
		"88-key digital piano with weighted keys and multiple voices. Includes stand and sustain pedal.",
		"Other", 12, 4.8, 289, unsplash + "photo-1520523839897-bd0b52f945a0" + unsplashQuery),
	seedProduct(46, "Board Game Collection", 59,
		"Set of 5 popular board games including chess, checkers, and more. Perfect for family game nights.",
		"Other", 35, 4.6, 178, unsplash + "photo-1606092195730-5d7b9af1efc5" + unsplashQuery),
	seedProduct(47, "LEGO Set", 79,
		"Large LEGO building set with 1000+ pieces. Encourages creativity and problem-solving skills.",
		"Other", 25, 4.9, 567, unsplash + "photo-1558618047-3c8c76ca7d13" + unsplashQuery),
	seedProduct(48, "Action Camera", 199,
		"4K action camera with waterproof housing and image stabilization. Perfect for sports and adventures.",
		"Electronics", 20, 4.7, 445, unsplash + "photo-1502920917128-1aa500764cbd" + unsplashQuery),
	seedProduct(49, "Drone", 599,
		"4K drone with GPS, obstacle avoidance, and 30-minute flight time. Includes controller and carrying case.",
		"Electronics", 8, 4.8, 234, unsplash + "photo-1473968512647-3e447244af8f" + unsplashQuery),
	seedProduct(50, "VR Headset", 399,
		"Virtual reality headset with high-resolution displays and motion tracking. Compatible with PC and console.",
		"Electronics", 12, 4.6, 189, unsplash + "photo-1593508512255-86ab42a8e620" + unsplashQuery),
	seedProduct(51, "Monitor 27", 299,
		"27-inch 4K monitor with IPS panel and HDR support. Perfect for gaming and professional work.",
		"Electronics", 18, 4.7, 356, unsplash + "photo-1527443224154-c4a3942d3acf" + unsplashQuery),
	seedProduct(52, "Mechanical Keyboard", 129,
		"RGB mechanical keyboard with Cherry MX switches and aluminum frame. Perfect for gaming and typing.",
		"Electronics", 30, 4.8, 523, unsplash + "photo-1587829741301-dc798b83add3" + unsplashQuery),
	seedProduct(53, "Gaming Mouse", 79,
		"High-precision gaming mouse with customizable RGB lighting and programmable buttons. Ergonomic design.",
		"Electronics", 45, 4.7, 678, unsplash + "photo-1527814050087-3793815479db" + unsplashQuery),
	seedProduct(54, "Webcam HD", 89,
		"1080p HD webcam with autofocus and built-in microphone. Perfect for video calls and streaming.",
		"Electronics", 38, 4.6, 445, unsplash + "photo-1587825147138-0bc0c30414d2" + unsplashQuery),
	seedProduct(55, "USB-C Hub", 49,
		"Multi-port USB-C hub with HDMI, USB 3.0, and SD card reader. Perfect for laptops with limited ports.",
		"Electronics", 60, 4.5, 567, unsplash + "photo-1625842268584-8f3296236761" + unsplashQuery),
	seedProduct(56, "Power Bank", 39,
		"20000mAh power bank with fast charging and multiple ports. Can charge multiple devices simultaneously.",
		"Electronics", 75, 4.6, 1234, unsplash + "photo-1609091839311-d5365f5bf956" + unsplashQuery),
}
