package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// jsonbValue/jsonbScan back the typed JSONB columns below.
func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

func jsonbScan(value interface{}, dest interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, dest)
}

// MoneyByEmployee maps an employee id to a monetary or percentage value.
// Used for per-employee salary and commission-rate overrides.
type MoneyByEmployee map[uuid.UUID]float64

func (m MoneyByEmployee) Value() (driver.Value, error) { return jsonbValue(m) }
func (m *MoneyByEmployee) Scan(value interface{}) error { return jsonbScan(value, m) }

// RecipeMaterial is one material line of a service recipe.
type RecipeMaterial struct {
	MaterialID uuid.UUID `json:"materialId"`
	Quantity   float64   `json:"quantity"`
}

type RecipeMaterialList []RecipeMaterial

func (l RecipeMaterialList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *RecipeMaterialList) Scan(value interface{}) error { return jsonbScan(value, l) }

// UUIDList stores an ordered list of entity references.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *UUIDList) Scan(value interface{}) error { return jsonbScan(value, l) }

// PlanService is one included service line of a subscription plan.
type PlanService struct {
	ServiceID uuid.UUID `json:"serviceId"`
	Quantity  int       `json:"quantity"`
}

type PlanServiceList []PlanService

func (l PlanServiceList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *PlanServiceList) Scan(value interface{}) error { return jsonbScan(value, l) }

// StringList stores derived display strings (plan features).
type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *StringList) Scan(value interface{}) error { return jsonbScan(value, l) }
