package tolls

// VehicleClass identifies one of the nine recognized fee categories
// (vehicle type x journey type)
type VehicleClass string

const (
	CarSingle  VehicleClass = "car_single"
	CarMulti   VehicleClass = "car_multi"
	CarMonthly VehicleClass = "car_monthly"
	LCVSingle  VehicleClass = "lcv_single"
	LCVMulti   VehicleClass = "lcv_multi"
	LCVMonthly VehicleClass = "lcv_monthly"
	BusSingle  VehicleClass = "bus_single"
	BusMulti   VehicleClass = "bus_multi"
	BusMonthly VehicleClass = "bus_monthly"
)

// VehicleClassLabels maps each recognized class to its display name
var VehicleClassLabels = map[VehicleClass]string{
	CarSingle:  "Car (Single Journey)",
	CarMulti:   "Car (Return Journey)",
	CarMonthly: "Car (Monthly Pass)",
	LCVSingle:  "LCV (Single Journey)",
	LCVMulti:   "LCV (Return Journey)",
	LCVMonthly: "LCV (Monthly Pass)",
	BusSingle:  "Bus (Single Journey)",
	BusMulti:   "Bus (Return Journey)",
	BusMonthly: "Bus (Monthly Pass)",
}

// ParseVehicleClass normalizes a request parameter to a recognized class.
// Unknown or empty values resolve to CarSingle, matching the service default.
func ParseVehicleClass(s string) VehicleClass {
	class := VehicleClass(s)
	if _, ok := VehicleClassLabels[class]; ok {
		return class
	}
	return CarSingle
}

// RateTable holds the per-class fee schedule for a plaza. Source datasets are
// incomplete per record; a zero value means the plaza does not publish that
// field.
type RateTable struct {
	CarSingle  float64 `json:"car_single,omitempty"`
	CarMulti   float64 `json:"car_multi,omitempty"`
	CarMonthly float64 `json:"car_monthly,omitempty"`
	LCVSingle  float64 `json:"lcv_single,omitempty"`
	LCVMulti   float64 `json:"lcv_multi,omitempty"`
	LCVMonthly float64 `json:"lcv_monthly,omitempty"`
	BusSingle  float64 `json:"bus_single,omitempty"`
	BusMulti   float64 `json:"bus_multi,omitempty"`
	BusMonthly float64 `json:"bus_monthly,omitempty"`
}

// Plaza represents a fixed toll collection point with coordinates and a fee
// schedule. Loaded once into an immutable snapshot; matching and pricing only
// read it.
type Plaza struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Latitude         float64   `json:"lat"`
	Longitude        float64   `json:"lon"`
	Location         string    `json:"location"`
	Highway          string    `json:"highway,omitempty"`
	FeeEffectiveDate string    `json:"fee_effective_date,omitempty"`
	ProjectType      string    `json:"project_type,omitempty"`
	Rates            RateTable `json:"rates"`
}
