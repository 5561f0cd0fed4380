package tables

// Seaport is one row of the seaports table (spec §6).
type Seaport struct {
	Country   string
	City      string
	Latitude  float64
	Longitude float64
	HasCoords bool
}

// Airport is one row of the airports table (spec §6).
type Airport struct {
	Country   string
	City      string
	IATA      string
	Latitude  float64
	Longitude float64
	HasCoords bool
}

// ShipLane is one row of the ships table (spec §6). Distance and Time are
// kept as raw cell strings so unitparse can apply its robust parsing.
type ShipLane struct {
	CountryA string
	PortA    string
	CountryB string
	PortB    string
	Distance string
	Time     string
	// PricePerKg is nil when the column is absent or non-numeric; callers
	// fall back to the sea-specific default cost (spec §4.2 step 3).
	PricePerKg *float64
	Route      string
}

// Flight is one row of the flights table (spec §6).
type Flight struct {
	FromCountry       string
	ToCountry         string
	FromIATA          string
	ToIATA            string
	DistanceKm        string
	FlightTimeMinutes string
	CostPerKg         float64
}

// Connector is one row of the seaport_airport_connect table (spec §6).
type Connector struct {
	PortCountry string
	PortCity    string
	City        string
	Distance    string
	Time        string
	CostUSD     float64
}

// TradeCost is one row of the trade table (spec §6), keyed by Country in
// the loader's returned map.
type TradeCost struct {
	Country           string
	ExportBorderCost  float64
	ImportBorderCost  float64
}

// Logistics is one row of the logistics table (spec §6), keyed by Country
// in the loader's returned map.
type Logistics struct {
	Country            string
	CustomsScore       float64
	MeanPortDwellDays  float64
	MeanTurnaroundDays float64
}
