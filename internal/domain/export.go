package domain

// ExportRow is a single row in the full plan export.
// It is a flat, denormalized view: one row per planned activity, ordered by
// day then by stored position within the day.
type ExportRow struct {
	Day        Day
	Position   int
	ActivityID string
	Kind       RecordKind
	RecordID   string
	Name       string
	Land       string
	Category   string
	Done       bool
}

// ExportRows flattens activities into export rows, preserving their order.
func ExportRows(activities []Activity) []ExportRow {
	rows := make([]ExportRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, ExportRow{
			Day:        a.Day,
			Position:   a.Position,
			ActivityID: a.ID.String(),
			Kind:       a.Record.Kind,
			RecordID:   a.Record.RecordID,
			Name:       a.Record.Name,
			Land:       a.Record.Land,
			Category:   a.Category,
			Done:       a.Done,
		})
	}
	return rows
}
