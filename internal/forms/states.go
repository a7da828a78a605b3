package forms

// USStates lists the two letter codes accepted in the state field, in the
// order the forms display them.
var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var stateIndex = func() map[string]bool {
	idx := make(map[string]bool, len(USStates))
	for _, s := range USStates {
		idx[s] = true
	}
	return idx
}()

// IsUSState reports whether code is one of USStates. Codes are upper case.
func IsUSState(code string) bool {
	return stateIndex[code]
}
