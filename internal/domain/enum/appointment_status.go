package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AppointmentStatus represents the status of a workshop appointment
type AppointmentStatus int

const (
	AppointmentStatusPending    AppointmentStatus = 0
	AppointmentStatusConfirmed  AppointmentStatus = 1
	AppointmentStatusInProgress AppointmentStatus = 2
	AppointmentStatusCompleted  AppointmentStatus = 3
	AppointmentStatusCancelled  AppointmentStatus = 4
)

func (s AppointmentStatus) String() string {
	return [...]string{"Pending", "Confirmed", "InProgress", "Completed", "Cancelled"}[s]
}

func (s AppointmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AppointmentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = AppointmentStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = AppointmentStatusPending
	case "Confirmed":
		*s = AppointmentStatusConfirmed
	case "InProgress":
		*s = AppointmentStatusInProgress
	case "Completed":
		*s = AppointmentStatusCompleted
	case "Cancelled":
		*s = AppointmentStatusCancelled
	}
	return nil
}

func (s AppointmentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *AppointmentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AppointmentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = AppointmentStatus(v)
	case int:
		*s = AppointmentStatus(v)
	}
	return nil
}
