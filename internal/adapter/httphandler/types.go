package httphandler

type (
	Product struct {
		ProductID       string  `json:"id"`
		Name            string  `json:"name"`
		Brand           string  `json:"brand"`
		Price           float64 `json:"price"`
		Description     string  `json:"description"`
		Image           string  `json:"image"`
		New             bool    `json:"new"`
		Movement        string  `json:"movement"`
		CaseMaterial    string  `json:"caseMaterial"`
		WaterResistance string  `json:"waterResistance"`
	}

	ProductDetails struct {
		Product
		Images         []string          `json:"images"`
		Specifications map[string]string `json:"specifications"`
		Features       []string          `json:"features"`
	}

	Review struct {
		ReviewID string `json:"id"`
		Name     string `json:"name"`
		Avatar   string `json:"avatar"`
		Date     string `json:"date"`
		Rating   int    `json:"rating"`
		Title    string `json:"title"`
		Content  string `json:"content"`
	}
)

type (
	CartLine struct {
		ProductID string  `json:"id"`
		Name      string  `json:"name"`
		Brand     string  `json:"brand"`
		Price     float64 `json:"price"`
		Image     string  `json:"image"`
		Quantity  int     `json:"quantity"`
	}

	Cart struct {
		Items    []CartLine `json:"items"`
		Subtotal float64    `json:"subtotal"`
		Shipping float64    `json:"shipping"`
		Tax      float64    `json:"tax"`
		Total    float64    `json:"total"`
	}

	AddCartItem struct {
		ProductID string `json:"id"`
		Quantity  int    `json:"quantity"`
	}

	// UpdateCartItem carries the replacement quantity. A missing or
	// unparsable value falls back to 1 before reaching the store.
	UpdateCartItem struct {
		Quantity *int `json:"quantity"`
	}
)

type (
	ShippingForm struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		City        string `json:"city"`
		State       string `json:"state"`
		Zip         string `json:"zip"`
		Country     string `json:"country"`
		SameAddress bool   `json:"sameAddress"`
	}

	PaymentForm struct {
		Method     string `json:"method"`
		CardName   string `json:"cardName"`
		CardNumber string `json:"cardNumber"`
		Expiry     string `json:"expiry"`
		CVV        string `json:"cvv"`
	}

	CheckoutStatus struct {
		State       string       `json:"state"`
		Shipping    ShippingForm `json:"shipping"`
		Payment     PaymentForm  `json:"payment"`
		SameAddress bool         `json:"sameAddress"`
	}

	OrderConfirmation struct {
		OrderNumber string `json:"orderNumber"`
		Message     string `json:"message"`
	}
)

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		AcceptTerms     bool   `json:"acceptTerms"`
	}

	User struct {
		UserID       string         `json:"id"`
		Name         string         `json:"name"`
		FirstName    string         `json:"firstName"`
		LastName     string         `json:"lastName"`
		Email        string         `json:"email"`
		Phone        string         `json:"phone"`
		Orders       []Order        `json:"orders"`
		Wishlist     []WishlistItem `json:"wishlist"`
		Appointments []Appointment  `json:"appointments"`
	}

	Order struct {
		OrderID string     `json:"id"`
		Date    string     `json:"date"`
		Total   float64    `json:"total"`
		Status  string     `json:"status"`
		Items   []CartLine `json:"items"`
	}

	WishlistItem struct {
		ProductID string  `json:"id"`
		Name      string  `json:"name"`
		Brand     string  `json:"brand"`
		Price     float64 `json:"price"`
		Image     string  `json:"image"`
	}

	Appointment struct {
		AppointmentID string `json:"id"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		Location      string `json:"location"`
		Status        string `json:"status"`
	}
)

// ErrorResponse optionally carries the route the client should
// navigate to, e.g. back to the cart when checkout is refused.
type ErrorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}
