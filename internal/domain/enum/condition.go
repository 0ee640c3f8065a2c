package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Condition represents the evaluated condition of one checklist item.
// The empty value means the item was not evaluated.
type Condition string

const (
	ConditionUnset             Condition = ""
	ConditionExcellent         Condition = "Excellent"
	ConditionGood              Condition = "Good"
	ConditionRegular           Condition = "Regular"
	ConditionBad               Condition = "Bad"
	ConditionRequiresAttention Condition = "Requires Attention"
)

// Conditions lists every assignable condition label.
var Conditions = []Condition{
	ConditionExcellent,
	ConditionGood,
	ConditionRegular,
	ConditionBad,
	ConditionRequiresAttention,
}

// Weight returns the score this condition contributes to the
// weighted vehicle average. Unset items do not count.
func (c Condition) Weight() int {
	switch c {
	case ConditionExcellent:
		return 100
	case ConditionGood:
		return 75
	case ConditionRegular:
		return 50
	case ConditionBad:
		return 25
	default:
		return 0
	}
}

func (c Condition) String() string {
	return string(c)
}

func (c Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = Condition(str)
	return nil
}

func (c Condition) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *Condition) Scan(value interface{}) error {
	if value == nil {
		*c = ConditionUnset
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = Condition(v)
	case []byte:
		*c = Condition(string(v))
	}
	return nil
}
