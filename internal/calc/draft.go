package calc

// TheoreticalDraft returns the buoyant stack draft in inches w.c. for a
// vertical rise:
//
//	dT = 0.2554 · B · H · (1/To − 1/Tf)
//
// with B in inches Hg, H in feet and both temperatures in Rankine. A
// non-positive barometricInHg selects the standard 29.92 inHg. Positive
// result = stack pulling; zero height or equal temperatures yield zero.
func TheoreticalDraft(heightFt, flueTempF, outsideTempF, barometricInHg float64) float64 {
	if barometricInHg <= 0 {
		barometricInHg = StandardBarometricInHg
	}
	outsideR := outsideTempF + rankineOffset
	flueR := flueTempF + rankineOffset
	return draftCoefficient * barometricInHg * heightFt * (1/outsideR - 1/flueR)
}

// AvailableDraft is theoretical draft minus total pressure loss. The sign
// convention matters downstream: available draft is the negated atmospheric
// pressure at the appliance outlet, and the category limits in the
// compliance check are expressed against it.
func AvailableDraft(theoreticalInWC, totalLossInWC float64) float64 {
	return theoreticalInWC - totalLossInWC
}
