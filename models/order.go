package models

import "time"

// Order snapshots selling_price at creation time; later product price changes
// never touch recorded orders.
type Order struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StartupProfileID *uint     `gorm:"column:startup_profile_id;index" json:"startup_profile_id"`
	ProductID        uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	Channel          *string   `gorm:"column:channel;size:100" json:"channel"`
	Quantity         int       `gorm:"column:quantity;default:0" json:"quantity"`
	SellingPrice     float64   `gorm:"column:selling_price;type:decimal(15,2);default:0" json:"selling_price"`
	CustomerRef      *string   `gorm:"column:customer_ref;size:191" json:"customer_ref,omitempty"`
	Date             *string   `gorm:"column:date;size:32" json:"date,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// ChannelName returns the channel label, defaulting to "unknown" for absent or
// empty channels so grouping never produces an empty bucket key.
func (o *Order) ChannelName() string {
	if o.Channel == nil || *o.Channel == "" {
		return "unknown"
	}
	return *o.Channel
}

// Revenue is quantity times the price recorded on the order.
func (o *Order) Revenue() float64 {
	return float64(o.Quantity) * o.SellingPrice
}
