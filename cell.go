package forthrt

import "github.com/jcorbin/forthrt/cell"

// Cell types, as used throughout the Runtime API.
type (
	Cell   = cell.Cell
	UCell  = cell.UCell
	DCell  = cell.DCell
	UDCell = cell.UDCell
	Cells  = cell.Cells
)
