package task

import "fmt"

type Coordinate struct {
	Column uint16
	Row    uint16
}

func (c *Coordinate) String() string {
	output := "{Coordinate "
	output += fmt.Sprintf("Column: %d ", c.Column)
	output += fmt.Sprintf("Row: %d}", c.Row)
	return output
}
