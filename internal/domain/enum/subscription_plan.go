package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SubscriptionPlan represents a tenant's subscription tier
type SubscriptionPlan int

const (
	PlanFree     SubscriptionPlan = 0
	PlanStandard SubscriptionPlan = 1
	PlanPremium  SubscriptionPlan = 2
)

func (p SubscriptionPlan) String() string {
	names := [...]string{"Free", "Standard", "Premium"}
	if int(p) < 0 || int(p) >= len(names) {
		return "Free"
	}
	return names[p]
}

// MaxTables returns the table cap for the plan. Zero means unlimited.
func (p SubscriptionPlan) MaxTables() int {
	switch p {
	case PlanFree:
		return 5
	case PlanStandard:
		return 25
	default:
		return 0
	}
}

func (p SubscriptionPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *SubscriptionPlan) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = SubscriptionPlan(i)
		return nil
	}
	switch str {
	case "Free":
		*p = PlanFree
	case "Standard":
		*p = PlanStandard
	case "Premium":
		*p = PlanPremium
	}
	return nil
}

func (p SubscriptionPlan) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *SubscriptionPlan) Scan(value interface{}) error {
	if value == nil {
		*p = PlanFree
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = SubscriptionPlan(v)
	case int:
		*p = SubscriptionPlan(v)
	}
	return nil
}
