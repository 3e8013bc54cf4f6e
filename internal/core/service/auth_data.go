package service

import "github.com/chronolux/storefront/internal/core/domain"

const (
	orderItemImageURL = "https://picsum.photos/1280/720?height=64&width=64"
	wishlistImageURL  = "https://picsum.photos/1280/720?height=300&width=300"
)

// mockUser returns the fixed profile every login installs, canned
// order history, wishlist and appointments included. None of it is
// linked to real cart activity.
func mockUser() domain.User {
	return domain.User{
		UserID:    "user1",
		Name:      "John Doe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "+1 (555) 123-4567",
		Orders: []domain.Order{
			{
				OrderID: "ORD12345",
				Date:    "May 10, 2023",
				Total:   14000,
				Status:  "Delivered",
				Items: []domain.CartLine{
					{
						ProductID: "1",
						Name:      "Submariner Date",
						Brand:     "Rolex",
						Price:     14000,
						Image:     orderItemImageURL,
						Quantity:  1,
					},
				},
			},
			{
				OrderID: "ORD12346",
				Date:    "April 22, 2023",
				Total:   5200,
				Status:  "Shipped",
				Items: []domain.CartLine{
					{
						ProductID: "4",
						Name:      "Seamaster Diver 300M",
						Brand:     "Omega",
						Price:     5200,
						Image:     orderItemImageURL,
						Quantity:  1,
					},
				},
			},
		},
		Wishlist: []domain.WishlistItem{
			{
				ProductID: "2",
				Name:      "Royal Oak",
				Brand:     "Audemars Piguet",
				Price:     32000,
				Image:     wishlistImageURL,
			},
			{
				ProductID: "3",
				Name:      "Nautilus",
				Brand:     "Patek Philippe",
				Price:     35000,
				Image:     wishlistImageURL,
			},
			{
				ProductID: "7",
				Name:      "Reverso Classic",
				Brand:     "Jaeger-LeCoultre",
				Price:     7000,
				Image:     wishlistImageURL,
			},
		},
		Appointments: []domain.Appointment{
			{
				AppointmentID: "APT1001",
				Date:          "June 15, 2023",
				Time:          "2:00 PM",
				Location:      "New York Flagship",
				Status:        "Confirmed",
			},
			{
				AppointmentID: "APT1002",
				Date:          "July 3, 2023",
				Time:          "11:30 AM",
				Location:      "New York Flagship",
				Status:        "Pending",
			},
		},
	}
}
