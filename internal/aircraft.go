package internal

import (
	"fmt"
	"strings"
)

// See https://airplanes.live/rest-api-adsb-data-field-descriptions/
// for further explanations of the fields.

// QueryResult mirrors the JSON envelope returned for all aircraft queries.
type QueryResult struct {
	Now      float64          `json:"now"`   // time this result was generated in [ms]
	Total    int              `json:"total"` // total count of aircraft returned
	Ptime    float64          `json:"ptime"` // server processing time required in [ms]
	Msg      string           `json:"msg"`   // status message, "No error" on success
	Aircraft []AircraftRecord `json:"ac"`    // list of aircraft records
}

// AircraftRecord holds the state of a single aircraft as reported upstream.
// Every field is optional; consumers must treat absent values defensively.
type AircraftRecord struct {
	Hex          string   `json:"hex"`      // Mode S hex code ID, assumed to be unique
	Flight       string   `json:"flight"`   // callsign / flight number, padded to 8 chars upstream
	Registration string   `json:"r"`        // registration of the aircraft
	IcaoType     string   `json:"t"`        // aircraft ICAO type pulled from database
	Squawk       string   `json:"squawk"`   // Mode A code encoded as 4 octal digits
	Lat          *float64 `json:"lat"`      // latitude in [decimal degrees], zero is valid
	Lon          *float64 `json:"lon"`      // longitude in [decimal degrees], zero is valid
	AltBaro      any      `json:"alt_baro"` // altitude in [feet] or string "ground"
	GroundSpeed  float64  `json:"gs"`       // ground speed in [knots]
	Track        float64  `json:"track"`    // true track over ground in degrees (0-359)
	SeenPos      float64  `json:"seen_pos"` // last position update in [seconds] before now
}

// Callsign returns the flight number with the upstream padding removed.
func (ac *AircraftRecord) Callsign() string {
	return strings.TrimSpace(ac.Flight)
}

// HasPosition reports whether the record carries both coordinates.
func (ac *AircraftRecord) HasPosition() bool {
	return ac.Lat != nil && ac.Lon != nil
}

// AltitudeString reads the altitude of an aircraft and returns it as a string.
// The altitude is transmitted either as the string 'ground' or as a number
// denoting the measured barometric altitude in feet.
// Returns the empty string if no altitude was transmitted.
func (ac *AircraftRecord) AltitudeString() string {
	if num, numOk := ac.AltBaro.(float64); numOk {
		if num == 0 {
			return ""
		}

		return fmt.Sprintf("%.0f ft", num)
	}

	if str, strOk := ac.AltBaro.(string); strOk {
		return str
	}

	return ""
}
