package dataset

import "slices"

// Row is the rate-card entry for one material/thickness combination.
// Nil numeric fields were absent, empty or not numeric in the source.
type Row struct {
	Material            string   `json:"material"`
	Thickness           *float64 `json:"thickness,omitempty"`
	CuttingRate         *float64 `json:"cutting_rate,omitempty"`
	PierceTimePrimary   *float64 `json:"pierce_time_primary,omitempty"`
	PierceTimeSecondary *float64 `json:"pierce_time_secondary,omitempty"`
	MaterialUnitCost    *float64 `json:"material_unit_cost,omitempty"`
	PackDuration        *float64 `json:"pack_duration,omitempty"`
}

// Dataset is the ordered, read-only collection of reference rows loaded from one source.
type Dataset struct {
	source string
	rows   []Row
}

// New builds a Dataset from rows. The slice is copied.
func New(source string, rows []Row) *Dataset {
	return &Dataset{
		source: source,
		rows:   slices.Clone(rows),
	}
}

// Source returns the path the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Rows returns a copy of all rows in source order.
func (d *Dataset) Rows() []Row {
	return slices.Clone(d.rows)
}

// ListMaterials returns the distinct materials in first-seen order.
func (d *Dataset) ListMaterials() []string {
	seen := make(map[string]struct{})
	materials := make([]string, 0)
	for _, r := range d.rows {
		if _, ok := seen[r.Material]; ok {
			continue
		}
		seen[r.Material] = struct{}{}
		materials = append(materials, r.Material)
	}
	return materials
}

// ListThicknesses returns the distinct thicknesses of material in first-seen order.
// It is empty when the material is unknown.
func (d *Dataset) ListThicknesses(material string) []float64 {
	thicknesses := make([]float64, 0)
	for _, r := range d.rows {
		if r.Material != material || r.Thickness == nil {
			continue
		}
		if slices.Contains(thicknesses, *r.Thickness) {
			continue
		}
		thicknesses = append(thicknesses, *r.Thickness)
	}
	return thicknesses
}

// FindRows returns the rows matching material exactly and, when thickness is not nil,
// matching that thickness too.
func (d *Dataset) FindRows(material string, thickness *float64) []Row {
	rows := make([]Row, 0)
	for _, r := range d.rows {
		if r.Material != material {
			continue
		}
		if thickness != nil && (r.Thickness == nil || *r.Thickness != *thickness) {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}
