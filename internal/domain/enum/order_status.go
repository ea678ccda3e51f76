package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents the kitchen lifecycle of an order
type OrderStatus int

const (
	OrderStatusPlaced    OrderStatus = 0
	OrderStatusPreparing OrderStatus = 1
	OrderStatusServed    OrderStatus = 2
	OrderStatusCancelled OrderStatus = 3
)

// IsValid reports whether the status is one of the known values
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPlaced && s <= OrderStatusCancelled
}

func (s OrderStatus) String() string {
	names := [...]string{"Placed", "Preparing", "Served", "Cancelled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Placed"
	}
	return names[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "Placed":
		*s = OrderStatusPlaced
	case "Preparing":
		*s = OrderStatusPreparing
	case "Served":
		*s = OrderStatusServed
	case "Cancelled":
		*s = OrderStatusCancelled
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPlaced
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
