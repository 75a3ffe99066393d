// Package landval assembles a geocoded dataset of published land valuations.
// It extracts valuation tables from per-region HTML pages, reduces region
// boundary polygons to representative points, and joins region-keyed
// valuation records onto those points as GeoJSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, geojson/, shp/).
package landval
