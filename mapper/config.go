package mapper

const (
	// HeaderSentinel marks the header row of the weather export.
	HeaderSentinel = "DATE"
	FieldSeparator = ","
	// LineCutset is the whitespace trimmed from both ends of a raw line.
	// Only ASCII whitespace counts; non-breaking spaces stay in the field.
	LineCutset = " \t\n\r\v\f"
	// MinFieldCount is the largest row width still treated as malformed.
	// Accepted rows carry strictly more fields than this.
	MinFieldCount  = 27
	EmitFieldCount = 5
	// CountValue is the value paired with every emitted field.
	CountValue = "1"
)

// Config tunes row acceptance and field selection.
type Config struct {
	Sentinel  string
	Separator string
	MinFields int
	LastN     int
}

// DefaultConfig returns the configuration of the stock mapper.
func DefaultConfig() Config {
	var c Config
	c.WithDefaults()
	return c
}

func (c *Config) WithDefaults() {
	if c.Sentinel == "" {
		c.Sentinel = HeaderSentinel
	}
	if c.Separator == "" {
		c.Separator = FieldSeparator
	}
	if c.MinFields <= 0 {
		c.MinFields = MinFieldCount
	}
	if c.LastN <= 0 {
		c.LastN = EmitFieldCount
	}
}
