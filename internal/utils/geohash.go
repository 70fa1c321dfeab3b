package utils

import (
	"github.com/mmcloughlin/geohash"
)

// WaypointGeohashPrecision gives roughly street-block resolution, enough for
// origin/destination descriptors on trip listings.
const WaypointGeohashPrecision = 7

// EncodeWaypoint converts waypoint coordinates to a geohash descriptor
func EncodeWaypoint(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, WaypointGeohashPrecision)
}

// DecodeGeohash converts a geohash string back to coordinates
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
