package http

import (
	"net/url"

	"github.com/fwojciec/landval"
)

// DefaultValuationBaseURL is the region land value summary endpoint.
const DefaultValuationBaseURL = "https://www.valuergeneral.nsw.gov.au/land_value_summaries/lga.php"

// DefaultBaseDate is the valuation base date requested when none is given.
const DefaultBaseDate = "01072024"

// ValuationURL returns the valuation page URL for a region code and base
// date, in the form base?lga=<code>&base_date=<date>.
func ValuationURL(base, code, baseDate string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", landval.Errorf(landval.EINVALID, "invalid base URL %q: %v", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", landval.Errorf(landval.EINVALID, "base URL %q must be absolute", base)
	}
	if code == "" {
		return "", landval.Errorf(landval.EINVALID, "region code required")
	}
	if baseDate == "" {
		baseDate = DefaultBaseDate
	}

	query := "lga=" + url.QueryEscape(code) + "&base_date=" + url.QueryEscape(baseDate)
	if u.RawQuery != "" {
		query = u.RawQuery + "&" + query
	}
	u.RawQuery = query
	return u.String(), nil
}
