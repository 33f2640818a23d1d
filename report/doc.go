// Package report renders a network and a solved route as text tables.
//
// CostTable lays out every arc as "cost, fuel" in a node × node grid, with
// refueling points marked in the header. RouteTable lists the route step by
// step with the arc taken and the landing and takeoff fuel levels. Both use
// lipgloss/table; styling degrades to plain text when the output is not a
// terminal.
package report
