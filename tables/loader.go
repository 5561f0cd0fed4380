package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// csvRows is an opened, header-indexed CSV table: cell() looks up a named
// column in a data row and returns "" for a column missing from the
// header or from a short row; it never panics.
type csvRows struct {
	header map[string]int
	rows   [][]string
}

// openCSV reads path and returns its rows wrapped with a header index.
// Missing files surface as an error with the offending path, per spec §7
// ("Missing input tables — fatal; propagate with the offending path").
func openCSV(path string) (*csvRows, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tables: missing input table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tables: malformed CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return &csvRows{header: map[string]int{}}, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.TrimSpace(col)] = i
	}

	return &csvRows{header: header, rows: records[1:]}, nil
}

func (c *csvRows) cell(row []string, col string) string {
	idx, ok := c.header[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func (c *csvRows) floatCell(row []string, col string, fallback float64) float64 {
	s := c.cell(row, col)
	if s == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

// LoadSeaports reads the seaports table: Country, City, Latitude, Longitude.
func LoadSeaports(path string) ([]Seaport, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]Seaport, 0, len(rows.rows))
	for _, r := range rows.rows {
		lat, latErr := strconv.ParseFloat(rows.cell(r, "Latitude"), 64)
		lon, lonErr := strconv.ParseFloat(rows.cell(r, "Longitude"), 64)
		out = append(out, Seaport{
			Country:   rows.cell(r, "Country"),
			City:      rows.cell(r, "City"),
			Latitude:  lat,
			Longitude: lon,
			HasCoords: latErr == nil && lonErr == nil,
		})
	}
	return out, nil
}

// LoadAirports reads the airports table: Country, City, IATA, Latitude, Longitude.
func LoadAirports(path string) ([]Airport, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]Airport, 0, len(rows.rows))
	for _, r := range rows.rows {
		lat, latErr := strconv.ParseFloat(rows.cell(r, "Latitude"), 64)
		lon, lonErr := strconv.ParseFloat(rows.cell(r, "Longitude"), 64)
		out = append(out, Airport{
			Country:   rows.cell(r, "Country"),
			City:      rows.cell(r, "City"),
			IATA:      rows.cell(r, "IATA"),
			Latitude:  lat,
			Longitude: lon,
			HasCoords: latErr == nil && lonErr == nil,
		})
	}
	return out, nil
}

// LoadShipLanes reads the ships table: Country_A, Port_A, Country_B,
// Port_B, Distance, Time, Price_Per_kg, Route.
func LoadShipLanes(path string) ([]ShipLane, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]ShipLane, 0, len(rows.rows))
	for _, r := range rows.rows {
		lane := ShipLane{
			CountryA: rows.cell(r, "Country_A"),
			PortA:    rows.cell(r, "Port_A"),
			CountryB: rows.cell(r, "Country_B"),
			PortB:    rows.cell(r, "Port_B"),
			Distance: rows.cell(r, "Distance"),
			Time:     rows.cell(r, "Time"),
			Route:    rows.cell(r, "Route"),
		}
		if raw := rows.cell(r, "Price_Per_kg"); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				lane.PricePerKg = &v
			}
		}
		out = append(out, lane)
	}
	return out, nil
}

// LoadFlights reads the flights table: From_Country, To_Country,
// From_IATA, To_IATA, Distance_km, Flight_Time_Minutes, Cost_Per_Kg.
func LoadFlights(path string) ([]Flight, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]Flight, 0, len(rows.rows))
	for _, r := range rows.rows {
		out = append(out, Flight{
			FromCountry:       rows.cell(r, "From_Country"),
			ToCountry:         rows.cell(r, "To_Country"),
			FromIATA:          rows.cell(r, "From_IATA"),
			ToIATA:            rows.cell(r, "To_IATA"),
			DistanceKm:        rows.cell(r, "Distance_km"),
			FlightTimeMinutes: rows.cell(r, "Flight_Time_Minutes"),
			CostPerKg:         rows.floatCell(r, "Cost_Per_Kg", 0),
		})
	}
	return out, nil
}

// LoadConnectors reads the seaport_airport_connect table: Port_Country,
// Port_City, City, Distance, Time, Cost_USD.
func LoadConnectors(path string) ([]Connector, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make([]Connector, 0, len(rows.rows))
	for _, r := range rows.rows {
		out = append(out, Connector{
			PortCountry: rows.cell(r, "Port_Country"),
			PortCity:    rows.cell(r, "Port_City"),
			City:        rows.cell(r, "City"),
			Distance:    rows.cell(r, "Distance"),
			Time:        rows.cell(r, "Time"),
			CostUSD:     rows.floatCell(r, "Cost_USD", 0),
		})
	}
	return out, nil
}

// LoadTradeCosts reads the trade table ("Cost to export: Border
// compliance (USD)", "Cost to import: Border compliance (USD)"), keyed by
// Country.
func LoadTradeCosts(path string) (map[string]TradeCost, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]TradeCost, len(rows.rows))
	for _, r := range rows.rows {
		country := rows.cell(r, "Country")
		out[country] = TradeCost{
			Country:          country,
			ExportBorderCost: rows.floatCell(r, "Cost to export: Border compliance (USD)", 0),
			ImportBorderCost: rows.floatCell(r, "Cost to import: Border compliance (USD)", 0),
		}
	}
	return out, nil
}

// LoadTradeNeighbors reads the trade_neighbour table, splitting the
// semicolon-separated Trade_Neighbors_Country column; a literal "None"
// (or an empty cell) maps to no neighbors.
func LoadTradeNeighbors(path string) (map[string][]string, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(rows.rows))
	for _, r := range rows.rows {
		country := rows.cell(r, "Country")
		raw := rows.cell(r, "Trade_Neighbors_Country")
		if raw == "" || strings.EqualFold(raw, "None") {
			out[country] = nil
			continue
		}
		parts := strings.Split(raw, ";")
		neighbors := make([]string, 0, len(parts))
		for _, p := range parts {
			if n := strings.TrimSpace(p); n != "" {
				neighbors = append(neighbors, n)
			}
		}
		out[country] = neighbors
	}
	return out, nil
}

// LoadLogistics reads the logistics table ("Customs Score", "Mean Port
// Dwell Time (days)", "Mean Turnaround Time at Port (days)"), keyed by
// Country.
func LoadLogistics(path string) (map[string]Logistics, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Logistics, len(rows.rows))
	for _, r := range rows.rows {
		country := rows.cell(r, "Country")
		out[country] = Logistics{
			Country:            country,
			CustomsScore:       rows.floatCell(r, "Customs Score", 3.0),
			MeanPortDwellDays:  rows.floatCell(r, "Mean Port Dwell Time (days)", 2.0),
			MeanTurnaroundDays: rows.floatCell(r, "Mean Turnaround Time at Port (days)", 1.0),
		}
	}
	return out, nil
}

// LoadCarbonFactors reads the carbon_emission table ("Mode of Transport",
// "Emission Factor (g CO₂/tonne-km)"), keyed by the literal mode label
// ("Sea Freight", "Air Freight", "Road Freight").
func LoadCarbonFactors(path string) (map[string]float64, error) {
	rows, err := openCSV(path)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(rows.rows))
	for _, r := range rows.rows {
		mode := rows.cell(r, "Mode of Transport")
		out[mode] = rows.floatCell(r, "Emission Factor (g CO₂/tonne-km)", 0)
	}
	return out, nil
}
