package order

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CheckoutItem là một line trong cart client gửi lên.
// Client chỉ gửi product ID + quantity + size; giá và total
// luôn do server tính lại từ catalog.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
}

type CheckoutRequest struct {
	Items              []CheckoutItem `json:"items"`
	ShippingName       string         `json:"shippingName"`
	ShippingPhone      string         `json:"shippingPhone"`
	ShippingAddress    string         `json:"shippingAddress"`
	ShippingCity       string         `json:"shippingCity"`
	ShippingPostalCode *string        `json:"shippingPostalCode"`
	ShippingCountry    string         `json:"shippingCountry"`
}

func (r CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShippingName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.ShippingPhone, validation.Required),
		validation.Field(&r.ShippingAddress, validation.Required, validation.Length(5, 300)),
		validation.Field(&r.ShippingCity, validation.Required),
		validation.Field(&r.ShippingCountry, validation.Required),
	)
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

type ListOrdersRequest struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}

func (r *ListOrdersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
