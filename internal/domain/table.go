package domain

// TableType represents the seating zone of a table
type TableType string

const (
	TableTypeWindow  TableType = "Window"
	TableTypeCenter  TableType = "Center"
	TableTypeTerrace TableType = "Terrace"
	TableTypePrivate TableType = "Private"
	TableTypeBar     TableType = "Bar"
	TableTypeFamily  TableType = "Family"
)

// TableTypes fixed enumeration of valid table types
var TableTypes = []TableType{
	TableTypeWindow,
	TableTypeCenter,
	TableTypeTerrace,
	TableTypePrivate,
	TableTypeBar,
	TableTypeFamily,
}

// IsValidTableType reports whether t belongs to the fixed type enumeration
func IsValidTableType(t TableType) bool {
	for _, valid := range TableTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// Table represents a physical bookable table
// The ID is assigned administratively (the number painted on the table),
// not generated by storage. Tables are never physically deleted: reservations
// reference them by ID, so retirement is IsActive=false
type Table struct {
	ID          int64
	Capacity    int
	Type        TableType
	IsActive    bool
	Description string
}

// FitsParty returns true if the table seats at least partySize guests
func (t *Table) FitsParty(partySize int) bool {
	return t.Capacity >= partySize
}
