package service

import "github.com/chronolux/storefront/internal/core/domain"

const productImageURL = "https://picsum.photos/1280/720?height=600&width=600"

var catalogProducts = []domain.Product{
	{
		ProductID:       "1",
		Name:            "Submariner Date",
		Brand:           "Rolex",
		Price:           14000,
		Description:     "The reference among divers' watches",
		Image:           productImageURL,
		New:             true,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "300m",
	},
	{
		ProductID:       "2",
		Name:            "Royal Oak",
		Brand:           "Audemars Piguet",
		Price:           32000,
		Description:     "The iconic luxury sports watch",
		Image:           productImageURL,
		New:             false,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "50m",
	},
	{
		ProductID:       "3",
		Name:            "Nautilus",
		Brand:           "Patek Philippe",
		Price:           35000,
		Description:     "Elegance and sportiness in perfect harmony",
		Image:           productImageURL,
		New:             false,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "120m",
	},
	{
		ProductID:       "4",
		Name:            "Seamaster Diver 300M",
		Brand:           "Omega",
		Price:           5200,
		Description:     "Professional diving watch with a distinguished history",
		Image:           productImageURL,
		New:             true,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "300m",
	},
	{
		ProductID:       "5",
		Name:            "Luminor Marina",
		Brand:           "Panerai",
		Price:           8700,
		Description:     "Distinctive Italian design with Swiss precision",
		Image:           productImageURL,
		New:             false,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "300m",
	},
	{
		ProductID:       "6",
		Name:            "Portugieser Chronograph",
		Brand:           "IWC",
		Price:           7800,
		Description:     "Timeless elegance with chronograph functionality",
		Image:           productImageURL,
		New:             false,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "30m",
	},
	{
		ProductID:       "7",
		Name:            "Reverso Classic",
		Brand:           "Jaeger-LeCoultre",
		Price:           7000,
		Description:     "The iconic reversible watch",
		Image:           productImageURL,
		New:             false,
		Movement:        "Manual",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "30m",
	},
	{
		ProductID:       "8",
		Name:            "Speedmaster Moonwatch",
		Brand:           "Omega",
		Price:           6300,
		Description:     "The first watch worn on the moon",
		Image:           productImageURL,
		New:             false,
		Movement:        "Manual",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "50m",
	},
	{
		ProductID:       "9",
		Name:            "Datejust 41",
		Brand:           "Rolex",
		Price:           9000,
		Description:     "The classic watch of reference",
		Image:           productImageURL,
		New:             true,
		Movement:        "Automatic",
		CaseMaterial:    "Stainless Steel",
		WaterResistance: "100m",
	},
}

var catalogReviews = []domain.Review{
	{
		ReviewID: "r1",
		Name:     "James Wilson",
		Avatar:   "https://picsum.photos/1280/720?height=40&width=40",
		Date:     "May 15, 2023",
		Rating:   5,
		Title:    "Exceptional timepiece",
		Content: "This watch exceeds all expectations. The craftsmanship is " +
			"impeccable, and it keeps perfect time. I've received numerous " +
			"compliments since purchasing it. Definitely worth the investment.",
	},
	{
		ReviewID: "r2",
		Name:     "Emily Chen",
		Avatar:   "https://picsum.photos/1280/720?height=40&width=40",
		Date:     "April 3, 2023",
		Rating:   4,
		Title:    "Beautiful design, minor issues",
		Content: "The watch is stunning and feels premium on the wrist. My " +
			"only complaint is that the clasp sometimes feels a bit loose. " +
			"Otherwise, it's a fantastic timepiece that I wear daily.",
	},
	{
		ReviewID: "r3",
		Name:     "Michael Rodriguez",
		Avatar:   "https://picsum.photos/1280/720?height=40&width=40",
		Date:     "March 22, 2023",
		Rating:   5,
		Title:    "A true heirloom piece",
		Content: "I purchased this watch to celebrate a milestone in my " +
			"career, and I couldn't be happier. The attention to detail is " +
			"remarkable, and it feels like something I'll pass down to " +
			"future generations.",
	},
}
