package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ClientState represents whether a client is currently active
type ClientState string

const (
	ClientStateActive   ClientState = "ACTIVE"
	ClientStateInactive ClientState = "INACTIVE"
)

func (s ClientState) String() string {
	return string(s)
}

func (s ClientState) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ClientState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ClientState(str)
	return nil
}

func (s ClientState) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ClientState) Scan(value interface{}) error {
	if value == nil {
		*s = ClientStateActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ClientState(v)
	case []byte:
		*s = ClientState(string(v))
	}
	return nil
}
