package spiral

import (
	"math"
	"strings"

	"orbitplan/pkg/mission"
)

// profileAltitude assigns AGL altitude to a slice's waypoints in a single
// left-to-right pass. Altitude is a pure function of the waypoint's radial
// distance from the mission center:
//
//   - the first waypoint flies at minHeight and seeds the trackers;
//   - outbound and hold waypoints climb at climbRate feet per foot of radial
//     distance beyond the first waypoint;
//   - inbound waypoints descend from the highest outbound altitude at
//     descentRate feet per foot of radial distance given back, so the drone
//     arrives near minHeight as it returns to the standoff radius.
//
// Results are clamped to maxHeight (when set) and floored at minHeight.
func profileAltitude(ws []mission.Waypoint, minHeight float64, maxHeight *float64, climbRate, descentRate float64) {
	if len(ws) == 0 {
		return
	}

	firstDist := math.Hypot(ws[0].X, ws[0].Y)
	maxOutboundAltitude := minHeight
	maxOutboundDistance := firstDist

	for i := range ws {
		dist := math.Hypot(ws[i].X, ws[i].Y)

		var z float64
		switch {
		case i == 0:
			z = minHeight
		case strings.HasPrefix(ws[i].Phase, "inbound"):
			z = maxOutboundAltitude - descentRate*math.Max(0, maxOutboundDistance-dist)
			if z < minHeight {
				z = minHeight
			}
		default:
			z = minHeight + climbRate*math.Max(0, dist-firstDist)
			if z > maxOutboundAltitude {
				maxOutboundAltitude = z
				maxOutboundDistance = dist
			}
		}

		if maxHeight != nil && z > *maxHeight {
			z = *maxHeight
		}
		if z < minHeight {
			z = minHeight
		}
		ws[i].Z = z
	}
}
