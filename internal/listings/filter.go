package listings

import (
	"net/url"
	"strconv"
	"strings"
)

// Range is a min,max pair; zero halves render as empty strings.
type Range struct {
	Min int
	Max int
}

// FilterParams mirrors the third-party search API's query parameters.
type FilterParams struct {
	Location         string
	ZoneID           string
	ResultsPerPage   int
	Page             int
	SortBy           string
	ExpandSearchArea int
	PropertyType     []string
	Prices           *Range
	Bedrooms         int
	Bathrooms        int
	MoveInDate       string
	HomeSize         *Range
	ThreeDToursOnly  bool
	Pets             []string
	Features         []string
	NYCAmenities     []string
}

// ParseQuery builds filter params from an inbound query string, applying
// the same defaults the frontend relies on.
func ParseQuery(q url.Values) FilterParams {
	f := FilterParams{
		Location:         q.Get("location"),
		ZoneID:           q.Get("zoneId"),
		ResultsPerPage:   intValue(q.Get("resultsPerPage")),
		Page:             intValue(q.Get("page")),
		SortBy:           q.Get("sortBy"),
		ExpandSearchArea: intValue(q.Get("expandSearchArea")),
		PropertyType:     listValue(q.Get("propertyType")),
		Prices:           rangeValue(q.Get("prices")),
		Bedrooms:         intValue(q.Get("bedrooms")),
		Bathrooms:        intValue(q.Get("bathrooms")),
		MoveInDate:       q.Get("moveInDate"),
		HomeSize:         rangeValue(q.Get("homeSize")),
		ThreeDToursOnly:  q.Get("threeDtoursOnly") == "true",
		Pets:             listValue(q.Get("pets")),
		Features:         listValue(q.Get("features")),
		NYCAmenities:     listValue(q.Get("nycAmenities")),
	}
	if f.Location == "" {
		f.Location = "city:Brea, CA"
	}
	if f.ResultsPerPage == 0 {
		f.ResultsPerPage = 20
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.SortBy == "" {
		f.SortBy = "best_match"
	}
	// Zero and unparseable values coerce to the default, not just absent ones.
	if f.ExpandSearchArea == 0 {
		f.ExpandSearchArea = 10
	}
	return f
}

// QueryString renders the params in the upstream API's expected form.
// Only the location value is escaped; multi-valued filters are joined
// with commas and ranges render as "min,max" with zeroes left empty.
func (f FilterParams) QueryString() string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+value)
	}

	if f.Location != "" {
		add("location", url.QueryEscape(f.Location))
	}
	if f.ZoneID != "" {
		add("zoneId", f.ZoneID)
	}
	if f.ResultsPerPage != 0 {
		add("resultsPerPage", strconv.Itoa(f.ResultsPerPage))
	}
	if f.Page != 0 {
		add("page", strconv.Itoa(f.Page))
	}
	if f.SortBy != "" {
		add("sortBy", f.SortBy)
	}
	add("expandSearchArea", strconv.Itoa(f.ExpandSearchArea))
	if len(f.PropertyType) > 0 {
		add("propertyType", strings.Join(f.PropertyType, ","))
	}
	if f.Prices != nil {
		add("prices", f.Prices.render())
	}
	if f.Bedrooms != 0 {
		add("bedrooms", strconv.Itoa(f.Bedrooms))
	}
	if f.Bathrooms != 0 {
		add("bathrooms", strconv.Itoa(f.Bathrooms))
	}
	if f.MoveInDate != "" {
		add("moveInDate", f.MoveInDate)
	}
	if f.HomeSize != nil {
		add("homeSize", f.HomeSize.render())
	}
	if f.ThreeDToursOnly {
		add("threeDtoursOnly", "true")
	}
	if len(f.Pets) > 0 {
		add("pets", strings.Join(f.Pets, ","))
	}
	if len(f.Features) > 0 {
		add("features", strings.Join(f.Features, ","))
	}
	if len(f.NYCAmenities) > 0 {
		add("nycAmenities", strings.Join(f.NYCAmenities, ","))
	}
	return strings.Join(parts, "&")
}

func (r *Range) render() string {
	min, max := "", ""
	if r.Min != 0 {
		min = strconv.Itoa(r.Min)
	}
	if r.Max != 0 {
		max = strconv.Itoa(r.Max)
	}
	return min + "," + max
}

func intValue(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func listValue(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func rangeValue(s string) *Range {
	if s == "" {
		return nil
	}
	halves := strings.SplitN(s, ",", 2)
	r := &Range{Min: intValue(halves[0])}
	if len(halves) == 2 {
		r.Max = intValue(halves[1])
	}
	return r
}
