package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// UnknownCategory is the grouping key for records missing a dimension value.
	UnknownCategory = "Unknown"
	// NotAvailable is what tables show for a missing value.
	NotAvailable = "N/A"
)

// Record is one inventory observation as captured on the shop floor.
// Every field is optional; missing strings are "".
type Record struct {
	ID                 string   `json:"id"`
	Section            string   `json:"section"`
	MachineID          string   `json:"machine_id"`
	MachineName        string   `json:"machine_name"`
	MachineDisplayName string   `json:"machine_display_name"`
	MachineDisplayID   string   `json:"machine_display_id"`
	Shift              string   `json:"shift"`
	ItemCode           string   `json:"item_code"`
	LotNo              string   `json:"lot_no"`
	ItemType           string   `json:"item_type"`
	MHENo              string   `json:"mhe_no"`
	BookedQuantity     Quantity `json:"booked_quantity"`
	CurrentQuantity    Quantity `json:"current_quantity"`
	UOM                string   `json:"uom"`
	QualityStatus      string   `json:"quality_status"`
	CapturedDate       string   `json:"captured_date"`
	CapturedDateIST    string   `json:"captured_date_ist"`
	DateOfProduction   string   `json:"date_of_production"`
	TimeOfProduction   string   `json:"time_of_production"`
	UseAfter           string   `json:"use_after"`
	UseBefore          string   `json:"use_before"`
}

// UnmarshalJSON tolerates whatever the upstream puts in a text column:
// numbers and bools keep their literal text, null and nested values read as "".
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                 Text     `json:"id"`
		Section            Text     `json:"section"`
		MachineID          Text     `json:"machine_id"`
		MachineName        Text     `json:"machine_name"`
		MachineDisplayName Text     `json:"machine_display_name"`
		MachineDisplayID   Text     `json:"machine_display_id"`
		Shift              Text     `json:"shift"`
		ItemCode           Text     `json:"item_code"`
		LotNo              Text     `json:"lot_no"`
		ItemType           Text     `json:"item_type"`
		MHENo              Text     `json:"mhe_no"`
		BookedQuantity     Quantity `json:"booked_quantity"`
		CurrentQuantity    Quantity `json:"current_quantity"`
		UOM                Text     `json:"uom"`
		QualityStatus      Text     `json:"quality_status"`
		CapturedDate       Text     `json:"captured_date"`
		CapturedDateIST    Text     `json:"captured_date_ist"`
		DateOfProduction   Text     `json:"date_of_production"`
		TimeOfProduction   Text     `json:"time_of_production"`
		UseAfter           Text     `json:"use_after"`
		UseBefore          Text     `json:"use_before"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{
		ID:                 string(raw.ID),
		Section:            string(raw.Section),
		MachineID:          string(raw.MachineID),
		MachineName:        string(raw.MachineName),
		MachineDisplayName: string(raw.MachineDisplayName),
		MachineDisplayID:   string(raw.MachineDisplayID),
		Shift:              string(raw.Shift),
		ItemCode:           string(raw.ItemCode),
		LotNo:              string(raw.LotNo),
		ItemType:           string(raw.ItemType),
		MHENo:              string(raw.MHENo),
		BookedQuantity:     raw.BookedQuantity,
		CurrentQuantity:    raw.CurrentQuantity,
		UOM:                string(raw.UOM),
		QualityStatus:      string(raw.QualityStatus),
		CapturedDate:       string(raw.CapturedDate),
		CapturedDateIST:    string(raw.CapturedDateIST),
		DateOfProduction:   string(raw.DateOfProduction),
		TimeOfProduction:   string(raw.TimeOfProduction),
		UseAfter:           string(raw.UseAfter),
		UseBefore:          string(raw.UseBefore),
	}
	return nil
}

// Text is a string column decoded from any JSON value.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n', '{', '[':
		*t = ""
	default:
		*t = Text(data)
	}
	return nil
}

// CaptureDate is the timestamp used for date filtering and the date series:
// the IST capture time when known, the raw capture time otherwise.
func (r Record) CaptureDate() string {
	if r.CapturedDateIST != "" {
		return r.CapturedDateIST
	}
	return r.CapturedDate
}

// Day returns the YYYY-MM-DD part of the capture date, or "" if none.
func (r Record) Day() string {
	d := r.CaptureDate()
	if i := strings.IndexAny(d, "T "); i >= 0 {
		d = d[:i]
	}
	return d
}

// Field returns the value of a filterable dimension. ok is false for
// dimensions a record does not carry.
func (r Record) Field(dim string) (value string, ok bool) {
	switch dim {
	case DimCapturedDate:
		return r.CaptureDate(), true
	case DimItemType:
		return r.ItemType, true
	case DimItemCode:
		return r.ItemCode, true
	case DimMachineName:
		return r.MachineName, true
	case DimMachineID:
		return r.MachineID, true
	case DimUOM:
		return r.UOM, true
	case DimQualityStatus:
		return r.QualityStatus, true
	case DimMHENo:
		return r.MHENo, true
	case DimLotNo:
		return r.LotNo, true
	case DimShift:
		return r.Shift, true
	case DimSection:
		return r.Section, true
	}
	return "", false
}

// Category maps a missing value to UnknownCategory.
func Category(v string) string {
	if v == "" {
		return UnknownCategory
	}
	return v
}

// Display maps a missing value to NotAvailable.
func Display(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}

// Quantity keeps the textual form of a numeric column. The upstream sends
// numbers, numeric strings or null depending on the driver.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")), len(data) > 0 && (data[0] == '{' || data[0] == '['):
		*q = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(strings.TrimSpace(s))
	default:
		*q = Quantity(data)
	}
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q == "" {
		return []byte("null"), nil
	}
	if d, err := decimal.NewFromString(string(q)); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(string(q))
}

// Decimal parses the quantity; anything unparsable counts as zero.
func (q Quantity) Decimal() decimal.Decimal {
	if q == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(string(q))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Float is Decimal as a float64.
func (q Quantity) Float() float64 {
	return q.Decimal().InexactFloat64()
}

// QuantityOf builds a Quantity from a float.
func QuantityOf(v float64) Quantity {
	return Quantity(strconv.FormatFloat(v, 'f', -1, 64))
}
