package internal

import (
	"fmt"
	"strings"
)

const (
	// noAircraftFound is returned when a query succeeds but matches nothing.
	// This is a valid outcome and must stay distinguishable from errors.
	noAircraftFound = "No aircraft found"
	// noAircraftData is returned when records exist but carry no known fields.
	noAircraftData = "No aircraft data available"
	// blockSeparatorWidth is the width of the rule between aircraft blocks.
	blockSeparatorWidth = 50
)

// FormatRecord renders a single aircraft record as one labeled text block.
// Fields are rendered in a fixed order; absent fields are omitted entirely.
// Values pass through as received from upstream, with their natural units
// appended. Returns the empty string if no field is present.
func FormatRecord(ac *AircraftRecord) string {
	var lines []string

	if callsign := ac.Callsign(); callsign != "" {
		lines = append(lines, "Callsign: "+callsign)
	}

	if ac.Registration != "" {
		lines = append(lines, "Registration: "+ac.Registration)
	}

	if ac.IcaoType != "" {
		lines = append(lines, "Type: "+ac.IcaoType)
	}

	if ac.HasPosition() {
		lines = append(lines, fmt.Sprintf("Position: %.4f, %.4f", *ac.Lat, *ac.Lon))
	}

	if altitude := ac.AltitudeString(); altitude != "" {
		lines = append(lines, "Altitude: "+altitude)
	}

	if ac.GroundSpeed != 0 {
		lines = append(lines, fmt.Sprintf("Ground Speed: %v knots", ac.GroundSpeed))
	}

	if ac.Track != 0 {
		lines = append(lines, fmt.Sprintf("Track: %v°", ac.Track))
	}

	if ac.Hex != "" {
		lines = append(lines, "Mode S Hex: "+ac.Hex)
	}

	if ac.SeenPos != 0 {
		lines = append(lines, fmt.Sprintf("Last Seen: %v seconds ago", ac.SeenPos))
	}

	return strings.Join(lines, "\n")
}

// FormatRecords renders a list of aircraft records as one block per record,
// prefixed with a count summary and joined by a separator rule.
// An empty list yields the "no results" message, not an error.
func FormatRecords(aircraft []AircraftRecord) string {
	if len(aircraft) == 0 {
		return noAircraftFound
	}

	blocks := make([]string, 0, len(aircraft))

	for i := range aircraft {
		if block := FormatRecord(&aircraft[i]); block != "" {
			blocks = append(blocks, block)
		}
	}

	if len(blocks) == 0 {
		return noAircraftData
	}

	separator := "\n" + strings.Repeat("─", blockSeparatorWidth) + "\n"

	return fmt.Sprintf(
		"Found %d aircraft:\n\n%s",
		len(aircraft),
		strings.Join(blocks, separator),
	)
}
