package grana

import (
	"math"
	"sort"

	"github.com/grana-fin/grana/date"
)

// Simulation is the projected outcome of holding an investment asset
// from its start date until withdrawal (or until today when no
// withdrawal date is set).
type Simulation struct {
	Days       int
	Gross      Money // principal compounded at the annual rate
	GrossYield Money
	IOF        Money // tax on the gross yield
	IR         Money // tax on the yield after IOF
	Net        Money
	NetYield   Money
}

// Simulate projects the yield of an asset with daily compounding of its
// annual rate, then applies IOF on the gross yield and IR on what
// remains. Rates are percentages. The holding period is at least one
// day.
func Simulate(a InvestmentAsset, today date.Date) Simulation {
	end := today
	if a.WithdrawalDate != nil {
		end = *a.WithdrawalDate
	}
	days := end.Sub(a.StartDate)
	if days < 1 {
		days = 1
	}

	principal := a.Principal.Float64()
	gross := principal * math.Pow(1+a.AnnualRate/100, float64(days)/365)
	grossYield := gross - principal
	iof := math.Max(0, grossYield*a.IOFRate/100)
	ir := math.Max(0, (grossYield-iof)*a.IRRate/100)
	net := gross - iof - ir

	return Simulation{
		Days:       days,
		Gross:      M(gross),
		GrossYield: M(grossYield),
		IOF:        M(iof),
		IR:         M(ir),
		Net:        M(net),
		NetYield:   M(net - principal),
	}
}

// PortfolioProjection totals the simulations of every asset.
type PortfolioProjection struct {
	Applied  Money // sum of principals
	Gross    Money
	Net      Money
	NetYield Money
}

// Project simulates every asset and sums the outcome.
func Project(assets []InvestmentAsset, today date.Date) PortfolioProjection {
	var p PortfolioProjection
	for _, a := range assets {
		sim := Simulate(a, today)
		p.Applied = p.Applied.Add(a.Principal)
		p.Gross = p.Gross.Add(sim.Gross)
		p.Net = p.Net.Add(sim.Net)
		p.NetYield = p.NetYield.Add(sim.NetYield)
	}
	return p
}

// AllocationLine is the total principal applied to one investment type.
type AllocationLine struct {
	Type   InvestmentType
	Amount Money
}

// Allocation returns the principal applied per investment type, largest
// first.
func Allocation(assets []InvestmentAsset) []AllocationLine {
	agg := map[InvestmentType]Money{}
	var order []InvestmentType
	for _, a := range assets {
		if _, seen := agg[a.Type]; !seen {
			order = append(order, a.Type)
		}
		agg[a.Type] = agg[a.Type].Add(a.Principal)
	}
	out := make([]AllocationLine, 0, len(order))
	for _, t := range order {
		out = append(out, AllocationLine{Type: t, Amount: agg[t]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}
