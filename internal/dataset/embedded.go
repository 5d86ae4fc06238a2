package dataset

import "github.com/tollwise/server/internal/lib/tolls"

// embeddedPlazas is the built-in reference table used when no dataset file is
// configured or the configured file cannot be read. Rates follow the Geohacker
// toll-plazas-india record structure.
var embeddedPlazas = []tolls.Plaza{
	{
		ID: 1, Name: "Kherki Daula Toll Plaza",
		Latitude: 28.408, Longitude: 76.987,
		Location: "Delhi-Gurgaon Expressway", Highway: "NH48",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 60, CarMulti: 60, CarMonthly: 1200,
			LCVSingle: 95, LCVMulti: 95, LCVMonthly: 1900,
			BusSingle: 185, BusMulti: 185, BusMonthly: 3700,
		},
	},
	{
		ID: 2, Name: "Ambience Mall Toll Plaza",
		Latitude: 28.504, Longitude: 77.096,
		Location: "Delhi-Gurgaon Expressway", Highway: "NH48",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 30, CarMulti: 30, CarMonthly: 600,
			LCVSingle: 50, LCVMulti: 50, LCVMonthly: 1000,
			BusSingle: 95, BusMulti: 95, BusMonthly: 1900,
		},
	},
	{
		ID: 3, Name: "Manesar Toll Plaza",
		Latitude: 28.3543, Longitude: 76.9405,
		Location: "Delhi-Jaipur Expressway", Highway: "NH48",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 80, CarMulti: 80, CarMonthly: 1600,
			LCVSingle: 125, LCVMulti: 125, LCVMonthly: 2500,
			BusSingle: 245, BusMulti: 245, BusMonthly: 4900,
		},
	},
	{
		ID: 4, Name: "Palwal Toll Plaza",
		Latitude: 28.4089, Longitude: 77.3178,
		Location: "Delhi-Agra Expressway", Highway: "NH2",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 45, CarMulti: 45, CarMonthly: 900,
			LCVSingle: 70, LCVMulti: 70, LCVMonthly: 1400,
			BusSingle: 140, BusMulti: 140, BusMonthly: 2800,
		},
	},
	{
		ID: 5, Name: "Mathura Toll Plaza",
		Latitude: 27.4924, Longitude: 77.6737,
		Location: "Delhi-Agra Expressway", Highway: "NH2",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 55, CarMulti: 55, CarMonthly: 1100,
			LCVSingle: 85, LCVMulti: 85, LCVMonthly: 1700,
			BusSingle: 170, BusMulti: 170, BusMonthly: 3400,
		},
	},
	{
		ID: 6, Name: "Agra Toll Plaza",
		Latitude: 27.1767, Longitude: 78.0081,
		Location: "Delhi-Agra Expressway", Highway: "NH2",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 70, CarMulti: 70, CarMonthly: 1400,
			LCVSingle: 110, LCVMulti: 110, LCVMonthly: 2200,
			BusSingle: 220, BusMulti: 220, BusMonthly: 4400,
		},
	},
	{
		ID: 7, Name: "Kanpur Entry Toll",
		Latitude: 26.8467, Longitude: 80.9462,
		Location: "Kanpur City Entry", Highway: "NH2",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 90, CarMulti: 90, CarMonthly: 1800,
			LCVSingle: 140, LCVMulti: 140, LCVMonthly: 2800,
			BusSingle: 280, BusMulti: 280, BusMonthly: 5600,
		},
	},
	{
		ID: 8, Name: "Mumbai Entry Toll",
		Latitude: 19.0760, Longitude: 72.8777,
		Location: "Mumbai City Entry", Highway: "NH48",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 40, CarMulti: 40, CarMonthly: 800,
			LCVSingle: 65, LCVMulti: 65, LCVMonthly: 1300,
			BusSingle: 130, BusMulti: 130, BusMonthly: 2600,
		},
	},
	{
		ID: 9, Name: "Pune Exit Toll",
		Latitude: 18.5204, Longitude: 73.8567,
		Location: "Pune City Exit", Highway: "NH48",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 80, CarMulti: 80, CarMonthly: 1600,
			LCVSingle: 125, LCVMulti: 125, LCVMonthly: 2500,
			BusSingle: 250, BusMulti: 250, BusMonthly: 5000,
		},
	},
	{
		ID: 10, Name: "Faridabad Toll Plaza",
		Latitude: 28.6139, Longitude: 77.2090,
		Location: "Delhi-Faridabad Expressway", Highway: "NH2",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 35, CarMulti: 35, CarMonthly: 700,
			LCVSingle: 55, LCVMulti: 55, LCVMonthly: 1100,
			BusSingle: 110, BusMulti: 110, BusMonthly: 2200,
		},
	},
	{
		ID: 11, Name: "Gurgaon Expressway Toll",
		Latitude: 28.4593, Longitude: 77.0266,
		Location: "Delhi-Gurgaon Expressway", Highway: "NH48",
		FeeEffectiveDate: "2024-01-01", ProjectType: "BOT",
		Rates: tolls.RateTable{
			CarSingle: 25, CarMulti: 25, CarMonthly: 500,
			LCVSingle: 40, LCVMulti: 40, LCVMonthly: 800,
			BusSingle: 80, BusMulti: 80, BusMonthly: 1600,
		},
	},
}
