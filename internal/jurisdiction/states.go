package jurisdiction

var states = []State{
	{Code: "AL", Name: "Alabama"},
	{Code: "AK", Name: "Alaska", NoIncomeTax: true},
	{Code: "AZ", Name: "Arizona"},
	{Code: "AR", Name: "Arkansas"},
	{Code: "CA", Name: "California"},
	{Code: "CO", Name: "Colorado"},
	{Code: "CT", Name: "Connecticut"},
	{Code: "DE", Name: "Delaware"},
	{Code: "DC", Name: "District of Columbia"},
	{Code: "FL", Name: "Florida", NoIncomeTax: true},
	{Code: "GA", Name: "Georgia"},
	{Code: "HI", Name: "Hawaii"},
	{Code: "ID", Name: "Idaho"},
	{Code: "IL", Name: "Illinois"},
	{Code: "IN", Name: "Indiana"},
	{Code: "IA", Name: "Iowa"},
	{Code: "KS", Name: "Kansas"},
	{Code: "KY", Name: "Kentucky"},
	{Code: "LA", Name: "Louisiana"},
	{Code: "ME", Name: "Maine"},
	{Code: "MD", Name: "Maryland"},
	{Code: "MA", Name: "Massachusetts"},
	{Code: "MI", Name: "Michigan"},
	{Code: "MN", Name: "Minnesota"},
	{Code: "MS", Name: "Mississippi"},
	{Code: "MO", Name: "Missouri"},
	{Code: "MT", Name: "Montana"},
	{Code: "NE", Name: "Nebraska"},
	{Code: "NV", Name: "Nevada", NoIncomeTax: true},
	{Code: "NH", Name: "New Hampshire", NoIncomeTax: true},
	{Code: "NJ", Name: "New Jersey"},
	{Code: "NM", Name: "New Mexico"},
	{Code: "NY", Name: "New York"},
	{Code: "NC", Name: "North Carolina"},
	{Code: "ND", Name: "North Dakota"},
	{Code: "OH", Name: "Ohio"},
	{Code: "OK", Name: "Oklahoma"},
	{Code: "OR", Name: "Oregon"},
	{Code: "PA", Name: "Pennsylvania"},
	{Code: "RI", Name: "Rhode Island"},
	{Code: "SC", Name: "South Carolina"},
	{Code: "SD", Name: "South Dakota", NoIncomeTax: true},
	{Code: "TN", Name: "Tennessee", NoIncomeTax: true},
	{Code: "TX", Name: "Texas", NoIncomeTax: true},
	{Code: "UT", Name: "Utah"},
	{Code: "VT", Name: "Vermont"},
	{Code: "VA", Name: "Virginia"},
	{Code: "WA", Name: "Washington", NoIncomeTax: true},
	{Code: "WV", Name: "West Virginia"},
	{Code: "WI", Name: "Wisconsin"},
	{Code: "WY", Name: "Wyoming", NoIncomeTax: true},
}

var agreements = [][2]string{
	{"AZ", "CA"}, {"AZ", "IN"}, {"AZ", "OR"}, {"AZ", "VA"},
	{"DC", "MD"}, {"DC", "VA"},
	{"IL", "IA"}, {"IL", "KY"}, {"IL", "MI"}, {"IL", "WI"},
	{"IN", "KY"}, {"IN", "MI"}, {"IN", "OH"}, {"IN", "PA"}, {"IN", "WI"},
	{"KY", "MI"}, {"KY", "OH"}, {"KY", "VA"}, {"KY", "WV"}, {"KY", "WI"},
	{"MD", "PA"}, {"MD", "VA"}, {"MD", "WV"},
	{"MI", "MN"}, {"MI", "OH"}, {"MI", "WI"},
	{"MN", "ND"},
	{"MT", "ND"},
	{"NJ", "PA"},
	{"OH", "PA"}, {"OH", "WV"},
	{"PA", "VA"}, {"PA", "WV"},
	{"VA", "WV"},
}

// Default returns the table with all US states, the District of Columbia and
// their reciprocity agreements.
func Default() Table {
	return New(states, agreements)
}
