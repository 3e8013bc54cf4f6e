package domain

type (
	Product struct {
		ProductID       string
		Name            string
		Brand           string
		Price           float64
		Description     string
		Image           string
		New             bool
		Movement        string
		CaseMaterial    string
		WaterResistance string
	}

	// A ProductDetails is a Product augmented with the gallery images,
	// specifications and feature list shown on the detail page.
	ProductDetails struct {
		Product
		Images         []string
		Specifications map[string]string
		Features       []string
	}

	Review struct {
		ReviewID string
		Name     string
		Avatar   string
		Date     string
		Rating   int
		Title    string
		Content  string
	}
)
