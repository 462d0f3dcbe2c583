package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// StringList is a custom type for handling ordered string sequences stored
// as serialized JSON in a text column
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Clean returns the list with empty and whitespace-only entries removed,
// preserving the order of the remaining entries.
func (l StringList) Clean() StringList {
	out := make(StringList, 0, len(l))
	for _, s := range l {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Recipe is the sole entity of the system. IDs are immutable and unique;
// CreatedAt is set exactly once at creation and never mutated afterwards.
type Recipe struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string     `gorm:"size:255;not null" json:"title"`
	Author             string     `gorm:"size:255;not null" json:"author"`
	Description        string     `gorm:"type:text" json:"description"`
	ServingSuggestions string     `gorm:"type:text" json:"servingSuggestions"`
	Ingredients        StringList `gorm:"type:text;not null;default:'[]'" json:"ingredients"`
	Instructions       StringList `gorm:"type:text;not null;default:'[]'" json:"instructions"`
	ImageURL           string     `gorm:"type:text" json:"imageUrl"`
	ChibiURL           string     `gorm:"type:text" json:"chibiUrl"`
	CreatedAt          time.Time  `json:"createdAt"`
}
