package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Role represents a staff member's role in the workshop
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleReceptionist Role = "RECEPTIONIST"
	RoleMechanic     Role = "MECHANIC"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = Role(str)
	return nil
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleMechanic
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(string(v))
	}
	return nil
}
