package catalog

// defaultItems is the stock listing shown until the catalog backend
// lands.
var defaultItems = []Item{
	{
		ID:        "1",
		Title:     "Vintage Denim Jacket",
		Category:  "Outerwear",
		Size:      "M",
		Condition: "Good",
		Points:    25,
		Image:     "https://images.unsplash.com/photo-1544966503-7cc5ac882d5d?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Sarah M.",
	},
	{
		ID:        "2",
		Title:     "Summer Floral Dress",
		Category:  "Dresses",
		Size:      "S",
		Condition: "Excellent",
		Points:    30,
		Image:     "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Emma K.",
	},
	{
		ID:        "3",
		Title:     "Designer Sneakers",
		Category:  "Shoes",
		Size:      "9",
		Condition: "Good",
		Points:    40,
		Image:     "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Mike D.",
	},
	{
		ID:        "4",
		Title:     "Classic White T-Shirt",
		Category:  "Tops",
		Size:      "L",
		Condition: "Excellent",
		Points:    15,
		Image:     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Alex R.",
	},
	{
		ID:        "5",
		Title:     "High-Waisted Jeans",
		Category:  "Bottoms",
		Size:      "28",
		Condition: "Good",
		Points:    35,
		Image:     "https://images.unsplash.com/photo-1542272604-787c3835535d?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Jessica L.",
	},
	{
		ID:        "6",
		Title:     "Leather Crossbody Bag",
		Category:  "Accessories",
		Size:      "One Size",
		Condition: "Excellent",
		Points:    45,
		Image:     "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Maria S.",
	},
	{
		ID:        "7",
		Title:     "Yoga Pants",
		Category:  "Activewear",
		Size:      "M",
		Condition: "Good",
		Points:    20,
		Image:     "https://images.unsplash.com/photo-1506629904890-03c399ff6bca?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Taylor B.",
	},
	{
		ID:        "8",
		Title:     "Silk Blouse",
		Category:  "Tops",
		Size:      "S",
		Condition: "Excellent",
		Points:    28,
		Image:     "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&w=300&h=300",
		Uploader:  "Sophie W.",
	},
	{
		ID:        "9",
		Title:     "Winter Coat",
		Category:  "Outerwear",
		Size:      "L",
		Condition: "Good",
		Points:    50,
		Image:     "https://images.unsplash.com/photo-1539533113208-f6df8cc8b543?auto=format&fit=crop&w=300&h=300",
		Uploader:  "David K.",
	},
}
