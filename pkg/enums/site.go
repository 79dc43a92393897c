package enums

import "fmt"

// Site identifies one of the fixed EBF operating locations.
//
// SiteGlobal is the "all sites" wildcard used by filters. It is not the same
// thing as the bare "Global" label the aggregator assigns to records that
// carry no site at all; the two never compare equal.
type Site string

const (
	SiteGlobal       Site = "GLOBAL"
	SiteAbidjan      Site = "Abidjan"
	SiteBouake       Site = "Bouaké"
	SiteSanPedro     Site = "San-Pédro"
	SiteYamoussoukro Site = "Yamoussoukro"
)

// MissingSiteLabel is the bucket label for records with no site set.
const MissingSiteLabel = "Global"

var validSites = []Site{
	SiteGlobal,
	SiteAbidjan,
	SiteBouake,
	SiteSanPedro,
	SiteYamoussoukro,
}

// String implements fmt.Stringer.
func (s Site) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Site.
func (s Site) IsValid() bool {
	for _, candidate := range validSites {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsWildcard reports whether the site means "all locations".
func (s Site) IsWildcard() bool {
	return s == SiteGlobal
}

// ParseSite converts raw input into a Site.
func ParseSite(value string) (Site, error) {
	for _, candidate := range validSites {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid site %q", value)
}
