package render

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/uvcast/internal/constants"
	"github.com/julianstephens/uvcast/internal/models"
)

// NodeKind identifies the shape of a rendered view
type NodeKind int

const (
	NodeEmpty NodeKind = iota
	NodeText
	NodeTable
)

// Node is the display tree produced from a forecast state
type Node struct {
	Kind   NodeKind
	Text   string
	Header []string
	Rows   [][]string
}

// Render maps a forecast state to its display tree. It has no state of its own.
func Render(state models.ForecastState) Node {
	switch state.Status {
	case constants.StatusLoading:
		return Node{Kind: NodeText, Text: constants.LoadingText}
	case constants.StatusFailure:
		return Node{Kind: NodeText, Text: constants.ErrorText}
	case constants.StatusSuccess:
		rows := make([][]string, 0, len(state.Entries))
		for _, e := range state.Entries {
			rows = append(rows, []string{FormatHour(e.Hour), strconv.Itoa(e.UV)})
		}
		return Node{
			Kind:   NodeTable,
			Header: []string{constants.TimeHeader, constants.UVHeader},
			Rows:   rows,
		}
	default:
		return Node{Kind: NodeEmpty}
	}
}

// FormatHour renders "{month}/{day} {hour}:00 {am|pm}". Hours after noon are
// taken mod 12; hour 0 prints as "0:00 am".
func FormatHour(ts models.Timestamp) string {
	display := ts.Hour
	if display > 12 {
		display = display % 12
	}
	suffix := "am"
	if ts.Hour >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d/%d %d:00 %s", ts.Month, ts.Day, display, suffix)
}
