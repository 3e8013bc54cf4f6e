// Package vault persists one serialized user record per storage key,
// standing in for a per-client storage slot.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/port"
)

var _ port.UserVault = (*UserVault)(nil)

type userRecord struct {
	UserID       string              `json:"id"`
	Name         string              `json:"name"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Orders       []orderRecord       `json:"orders,omitempty"`
	Wishlist     []wishlistRecord    `json:"wishlist,omitempty"`
	Appointments []appointmentRecord `json:"appointments,omitempty"`
}

type orderRecord struct {
	OrderID string       `json:"id"`
	Date    string       `json:"date"`
	Total   float64      `json:"total"`
	Status  string       `json:"status"`
	Items   []lineRecord `json:"items"`
}

type lineRecord struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type wishlistRecord struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

type appointmentRecord struct {
	AppointmentID string `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	Status        string `json:"status"`
}

type UserVault struct {
	dir string
}

func NewUserVault(dir string) (UserVault, error) {
	const op = "NewUserVault"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return UserVault{}, fmt.Errorf("%s: %w", op, err)
	}
	return UserVault{dir}, nil
}

func (v UserVault) SaveUser(key string, u domain.User) error {
	const op = "UserVault.SaveUser"

	p, err := v.path(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	b, err := json.Marshal(toRecord(u))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LoadUser reads the persisted record. A missing file maps to
// [domain.ErrNotFound]; a corrupt one surfaces the parse error and
// the caller decides whether to swallow it.
func (v UserVault) LoadUser(key string) (domain.User, error) {
	const op = "UserVault.LoadUser"

	p, err := v.path(key)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	var r userRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.User{}, fmt.Errorf("%s: failed to parse record: %w", op, err)
	}
	return toDomain(r), nil
}

func (v UserVault) DeleteUser(key string) error {
	const op = "UserVault.DeleteUser"
	log := slog.With("op", op)

	p, err := v.path(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no persisted record", "key", key)
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// path maps the key to its record file. Keys carrying path
// separators are rejected, a record never lands outside the vault
// directory.
func (v UserVault) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(v.dir, key+".json"), nil
}

func toRecord(u domain.User) userRecord {
	r := userRecord{
		UserID:    u.UserID,
		Name:      u.Name,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	for _, o := range u.Orders {
		or := orderRecord{
			OrderID: o.OrderID,
			Date:    o.Date,
			Total:   o.Total,
			Status:  o.Status,
		}
		for _, it := range o.Items {
			or.Items = append(or.Items, lineRecord(it))
		}
		r.Orders = append(r.Orders, or)
	}
	for _, w := range u.Wishlist {
		r.Wishlist = append(r.Wishlist, wishlistRecord(w))
	}
	for _, a := range u.Appointments {
		r.Appointments = append(r.Appointments, appointmentRecord(a))
	}
	return r
}

func toDomain(r userRecord) domain.User {
	u := domain.User{
		UserID:    r.UserID,
		Name:      r.Name,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
	for _, o := range r.Orders {
		do := domain.Order{
			OrderID: o.OrderID,
			Date:    o.Date,
			Total:   o.Total,
			Status:  o.Status,
		}
		for _, it := range o.Items {
			do.Items = append(do.Items, domain.CartLine(it))
		}
		u.Orders = append(u.Orders, do)
	}
	for _, w := range r.Wishlist {
		u.Wishlist = append(u.Wishlist, domain.WishlistItem(w))
	}
	for _, a := range r.Appointments {
		u.Appointments = append(u.Appointments, domain.Appointment(a))
	}
	return u
}
