package icsv

import (
	"encoding/json"
	"io"

	"icsvgen/profile"
)

// Schema is the machine-validatable sibling of the annotated header,
// shaped like a frictionless table schema.
type Schema struct {
	Fields        []SchemaField `json:"fields"`
	MissingValues []string      `json:"missingValues"`
}

type SchemaField struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Format      string       `json:"format,omitempty"`
	Description string       `json:"description,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty"`
}

// Constraints carries the optional per-field checks. Minimum and
// maximum appear only for integer, number and datetime columns with
// defined bounds; required appears only when true.
type Constraints struct {
	Minimum  interface{} `json:"minimum,omitempty"`
	Maximum  interface{} `json:"maximum,omitempty"`
	Required bool        `json:"required,omitempty"`
}

// BuildSchema derives the schema descriptor from a table profile.
func BuildSchema(t *profile.Table) *Schema {
	s := &Schema{
		Fields:        make([]SchemaField, len(t.Columns)),
		MissingValues: t.Vocabulary.Tokens(),
	}

	for i, c := range t.Columns {
		f := SchemaField{
			Name:        c.Name,
			Type:        c.Type.String(),
			Description: c.Description,
		}

		con := Constraints{}

		if c.HasBounds() {
			// Datetime bounds are rendered as strings so the schema
			// matches the annotated header; numeric bounds stay numeric.
			con.Minimum = schemaBound(c.Type, c.Min)
			con.Maximum = schemaBound(c.Type, c.Max)
		}

		// Required is only meaningful when at least one record was
		// seen; an empty table constrains nothing.
		if c.Required && t.RecordCount > 0 {
			con.Required = true
		}

		if con.Minimum != nil || con.Required {
			f.Constraints = &con
		}

		s.Fields[i] = f
	}

	return s
}

func schemaBound(t profile.ValueType, v interface{}) interface{} {
	if t == profile.DateTimeType {
		return profile.FormatValue(v)
	}

	return v
}

// Encode writes the schema as indented JSON.
func (s *Schema) Encode(w io.Writer) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}
