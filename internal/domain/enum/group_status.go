package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// GroupStatus represents the billing lifecycle of a seating group
type GroupStatus int

const (
	GroupStatusOpen    GroupStatus = 0
	GroupStatusBilled  GroupStatus = 1
	GroupStatusSettled GroupStatus = 2
)

func (s GroupStatus) String() string {
	names := [...]string{"Open", "Billed", "Settled"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Open"
	}
	return names[s]
}

func (s GroupStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *GroupStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = GroupStatus(i)
		return nil
	}
	switch str {
	case "Open":
		*s = GroupStatusOpen
	case "Billed":
		*s = GroupStatusBilled
	case "Settled":
		*s = GroupStatusSettled
	}
	return nil
}

func (s GroupStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *GroupStatus) Scan(value interface{}) error {
	if value == nil {
		*s = GroupStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = GroupStatus(v)
	case int:
		*s = GroupStatus(v)
	}
	return nil
}
