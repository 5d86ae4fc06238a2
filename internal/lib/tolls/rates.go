package tolls

// ResolvePrice resolves the fee for a vehicle class against a plaza's rate
// table. Source datasets rarely publish all nine fields, so resolution falls
// back within the vehicle category: exact class first, then the single/multi
// sibling, then zero. Monthly passes have no sibling. Fallback never crosses
// vehicle categories; unrecognized classes resolve as car_single.
func ResolvePrice(plaza Plaza, class VehicleClass) float64 {
	r := plaza.Rates

	switch class {
	case CarSingle:
		return firstNonZero(r.CarSingle, r.CarMulti)
	case CarMulti:
		return firstNonZero(r.CarMulti, r.CarSingle)
	case CarMonthly:
		return r.CarMonthly
	case LCVSingle:
		return firstNonZero(r.LCVSingle, r.LCVMulti)
	case LCVMulti:
		return firstNonZero(r.LCVMulti, r.LCVSingle)
	case LCVMonthly:
		return r.LCVMonthly
	case BusSingle:
		return firstNonZero(r.BusSingle, r.BusMulti)
	case BusMulti:
		return firstNonZero(r.BusMulti, r.BusSingle)
	case BusMonthly:
		return r.BusMonthly
	default:
		return firstNonZero(r.CarSingle, r.CarMulti)
	}
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
