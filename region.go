package landval

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
)

// RegionProperty is the boundary feature property holding the region key.
const RegionProperty = "abb_name"

// RegionKeyFromFilename derives a region key from a per-region data file
// name: the extension is stripped and the part before the first underscore
// is returned. Example: "Albury_industrial.csv" → "Albury".
func RegionKeyFromFilename(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	key, _, _ := strings.Cut(stem, "_")
	return key
}

// RegionKeyFromDocument derives a region key from a downloaded page name.
// Pages are saved under the full region name, so only the extension is stripped.
func RegionKeyFromDocument(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RegionKeyFromProperties reads the region key from feature properties.
// Returns false if the property is missing, empty, or not a string.
func RegionKeyFromProperties(props map[string]any) (string, bool) {
	v, ok := props[RegionProperty]
	if !ok {
		return "", false
	}
	key, ok := v.(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Region is one entry of the region list: the code used by the valuation
// site and the name used as the region key.
type Region struct {
	Code string
	Name string
}

// RegionList is an ordered list of regions.
type RegionList []Region

// ParseRegionList reads one "<code> <name>" entry per line.
// Blank lines and lines without a space separator are skipped.
func ParseRegionList(r io.Reader) (RegionList, error) {
	var regions RegionList
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		code, name, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		regions = append(regions, Region{Code: code, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(EINVALID, "failed to read region list: %v", err)
	}
	return regions, nil
}

// Names returns the set of region names in the list.
func (l RegionList) Names() KeySet {
	keys := make(KeySet, len(l))
	for _, r := range l {
		keys[r.Name] = struct{}{}
	}
	return keys
}

// KeySet is a set of region keys.
type KeySet map[string]struct{}

// NewKeySet returns a set containing the given keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Contains reports whether key is in the set.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// RecordGroups maps a region key to its valuation records, in file order
// then row order. Records from several files sharing a key are concatenated.
type RecordGroups map[string][]Record

// NamedGroups labels a set of record groups with the feature property
// they are attached under when joined onto boundary points.
type NamedGroups struct {
	Property string
	Groups   RecordGroups
}

// Feature properties the valuation record groups are attached under.
const (
	CommercialProperty  = "commercial_land_values"
	ResidentialProperty = "residential_land_values"
)
