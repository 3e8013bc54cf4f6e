package domain

type (
	User struct {
		UserID       string
		Name         string
		FirstName    string
		LastName     string
		Email        string
		Phone        string
		Orders       []Order
		Wishlist     []WishlistItem
		Appointments []Appointment
	}

	Order struct {
		OrderID string
		Date    string
		Total   float64
		Status  string
		Items   []CartLine
	}

	WishlistItem struct {
		ProductID string
		Name      string
		Brand     string
		Price     float64
		Image     string
	}

	Appointment struct {
		AppointmentID string
		Date          string
		Time          string
		Location      string
		Status        string
	}
)

// Registration carries the fields the register form collects.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}
