package graphbuild

// TablePaths names the nine catalog CSV files a Builder reads. Paths are
// opaque to graphbuild; a caller typically joins them against
// routeconfig.Config.Data.RawNodesDir / RawEdgesDir.
type TablePaths struct {
	Seaports       string
	Airports       string
	Ships          string
	Flights        string
	Connectors     string
	Trade          string
	TradeNeighbour string
	Logistics      string
	CarbonEmission string
}
