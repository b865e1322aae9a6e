package profile

// Column holds the committed type and statistics for one input column.
type Column struct {
	// Name of the column, from the header row or synthesized.
	Name string `json:"name"`

	// Index of the column in the input.
	Index int `json:"index"`

	// Type committed for the whole column.
	Type ValueType `json:"type"`

	// Bounds under the committed type: int64, float64 or time.Time.
	// Nil for string columns and columns with no non-missing values.
	Min interface{} `json:"min,omitempty"`
	Max interface{} `json:"max,omitempty"`

	// Number of cells matching the missing vocabulary.
	MissingCount int64 `json:"missing_count"`

	// True iff no cell was missing.
	Required bool `json:"required"`

	// Never derived here; an external enrichment concern.
	Description string `json:"description"`
}

// HasBounds reports whether the column carries a defined min/max.
func (c *Column) HasBounds() bool {
	return c.Min != nil && c.Max != nil
}

// Table is the aggregate profile of one input table. Column order is
// the input column order.
type Table struct {
	// Ordered column profiles.
	Columns []*Column `json:"columns"`

	// Total number of data records processed.
	RecordCount int64 `json:"record_count"`

	// Detected or forced input delimiter.
	Delimiter byte `json:"-"`

	// Nodata token reported in descriptor metadata: the forced token
	// when one was configured, else the vocabulary token observed most
	// often in the data, else empty.
	Nodata string `json:"nodata"`

	// Vocabulary the table was profiled with.
	Vocabulary Vocabulary `json:"-"`
}
