package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/fuelroute/fuelpath"
	"github.com/katalvlaran/fuelroute/netmodel"
)

// RefuelMark is appended to refueling point labels.
const RefuelMark = " (R)"

// Empty fills cells without an arc.
const Empty = "-"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	refuelStyle = cellStyle.Foreground(lipgloss.Color("#2E8B57"))
)

func label(d *netmodel.Data, id string) string {
	if d.IsRefuel(id) {
		return id + RefuelMark
	}

	return id
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// CostTable renders the arc costs and fuel of d.
func CostTable(d *netmodel.Data) string {
	headers := make([]string, 0, len(d.Nodes)+1)
	headers = append(headers, "")
	for _, id := range d.Nodes {
		headers = append(headers, label(d, id))
	}

	t := newTable(headers...)
	for _, from := range d.Nodes {
		row := make([]string, 0, len(d.Nodes)+1)
		row = append(row, from)
		for _, to := range d.Nodes {
			a := netmodel.Arc{From: from, To: to}
			if fuel, ok := d.Fuel[a]; ok {
				row = append(row, fmt.Sprintf("%s, %d", num(d.Cost[a]), fuel))
			} else {
				row = append(row, Empty)
			}
		}
		t.Row(row...)
	}

	return t.String()
}

// RouteTable renders route r with its fuel profile fp.
func RouteTable(r fuelpath.Route, fp fuelpath.FuelProfile, d *netmodel.Data) string {
	t := newTable("Step", "Node", "Arc fuel", "Arc cost", "Landing", "Takeoff")
	refuelRows := make(map[int]bool)
	for n, id := range r {
		arcFuel, arcCost := Empty, Empty
		if n > 0 {
			a := netmodel.Arc{From: r[n-1], To: id}
			arcFuel = strconv.FormatInt(d.Fuel[a], 10)
			arcCost = num(d.Cost[a])
		}
		if d.IsRefuel(id) {
			refuelRows[n] = true
		}
		t.Row(strconv.Itoa(n+1), label(d, id), arcFuel, arcCost, level(fp.Landing, n), level(fp.Takeoff, n))
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case refuelRows[row]:
			return refuelStyle
		default:
			return cellStyle
		}
	})

	return t.String()
}

// Summary is a one-line description of a solved route.
func Summary(r fuelpath.Route, objective float64, d *netmodel.Data) string {
	return fmt.Sprintf("route %v: %d arcs, %d refuel stops, objective %s",
		[]string(r), len(r.Arcs()), r.RefuelStops(d), num(objective))
}

func level(xs []float64, i int) string {
	if i >= len(xs) {
		return Empty
	}

	return num(xs[i])
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
