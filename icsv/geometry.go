package icsv

import "strings"

// DetectGeometry looks for spatial columns in the header. A column
// named geometry wins outright; otherwise a latitude/longitude pair
// yields a column hint with a WGS84 SRID. Purely name-based, the cell
// values are never inspected.
func DetectGeometry(names []string) (geometry, srid string) {
	var latName, lonName string

	for _, n := range names {
		switch strings.ToLower(n) {
		case "geometry":
			return "column:" + n, ""
		case "lat", "latitude":
			latName = n
		case "lon", "lng", "longitude":
			lonName = n
		}
	}

	if latName != "" && lonName != "" {
		return "column:" + latName + "," + lonName, "EPSG:4326"
	}

	return "", ""
}
