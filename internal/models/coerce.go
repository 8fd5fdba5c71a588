package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The sheet backend is untyped: a numeric cell can come back as a
// JSON number, a quoted string, null, or be missing entirely. Number
// swallows all of those and coerces to zero instead of failing, so a
// malformed cell never drops the whole row.

// Number is a float64 that tolerates string/null/absent JSON input.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	// 1. Plain JSON number
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Number(f)
		return nil
	}

	// 2. Quoted number, e.g. "12.50"
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			*n = 0
			return nil
		}
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			*n = Number(f)
			return nil
		}
	}

	// 3. Anything else (bool, object...) coerces to zero
	*n = 0
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Embedded lists get the same treatment: a missing, null or non-array
// items field becomes an empty list, never an error.

// RepairItems is a tolerant []RepairItem.
type RepairItems []RepairItem

func (x *RepairItems) UnmarshalJSON(data []byte) error {
	var items []RepairItem
	if err := json.Unmarshal(data, &items); err != nil {
		*x = RepairItems{}
		return nil
	}
	if items == nil {
		items = []RepairItem{}
	}
	*x = items
	return nil
}

// Installments is a tolerant []Installment.
type Installments []Installment

func (x *Installments) UnmarshalJSON(data []byte) error {
	var ins []Installment
	if err := json.Unmarshal(data, &ins); err != nil {
		*x = Installments{}
		return nil
	}
	if ins == nil {
		ins = []Installment{}
	}
	*x = ins
	return nil
}

// SaleLines is a tolerant []SaleLine.
type SaleLines []SaleLine

func (x *SaleLines) UnmarshalJSON(data []byte) error {
	var lines []SaleLine
	if err := json.Unmarshal(data, &lines); err != nil {
		*x = SaleLines{}
		return nil
	}
	if lines == nil {
		lines = []SaleLine{}
	}
	*x = lines
	return nil
}
