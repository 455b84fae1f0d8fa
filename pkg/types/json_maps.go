package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringListMap stores provider preferences per domain, e.g.
// {"ride": ["Uber", "Ola"], "grocery": ["Blinkit"]}.
type StringListMap map[string][]string

func (m StringListMap) Value() (driver.Value, error)  { return marshalMap(m) }
func (m *StringListMap) Scan(value interface{}) error { return unmarshalMap(value, m) }

// FloatMap stores per-domain budget limits.
type FloatMap map[string]float64

func (m FloatMap) Value() (driver.Value, error)  { return marshalMap(m) }
func (m *FloatMap) Scan(value interface{}) error { return unmarshalMap(value, m) }

// BoolMap stores notification toggles.
type BoolMap map[string]bool

func (m BoolMap) Value() (driver.Value, error)  { return marshalMap(m) }
func (m *BoolMap) Scan(value interface{}) error { return unmarshalMap(value, m) }

// StringMap stores default pickup/delivery addresses keyed by purpose.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error)  { return marshalMap(m) }
func (m *StringMap) Scan(value interface{}) error { return unmarshalMap(value, m) }

func marshalMap(m any) (driver.Value, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("json map: marshal: %w", err)
	}
	return string(raw), nil
}

func unmarshalMap(value interface{}, dest any) error {
	if value == nil {
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("json map: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, dest)
}
