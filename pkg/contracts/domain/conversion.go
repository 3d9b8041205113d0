package domain

// ConversionLine is the sign-magnitude rendering of one integer.
// Binary and Hex have no leading zeros unless the value is zero and start
// with "-" exactly when Value is negative.
type ConversionLine struct {
	Value  int64  `json:"value"`
	Binary string `json:"binary"`
	Hex    string `json:"hex"`
}
