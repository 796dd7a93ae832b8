package types

// Finding describes one pattern match at a file and 1-based line. Match always
// holds the masked form of the matched text, never the raw value.
type Finding struct {
	File    string `json:"file"`
	Pattern string `json:"pattern"`
	Match   string `json:"match"`
	Line    int    `json:"line"`
}
