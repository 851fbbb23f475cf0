package sizing

const (
	MainBeamSpanRatio      = 12.0 // L/h
	SecondaryBeamSpanRatio = 16.0 // L/h

	// BeamWidthRatio is b/h
	BeamWidthRatio = 0.4

	BeamStep     = 50.0  // mm
	MinBeamWidth = 200.0 // mm

	// Deep beams of at least DeepBeamHeight need DeepBeamMinWidth
	DeepBeamHeight   = 700.0 // mm
	DeepBeamMinWidth = 300.0 // mm
)

// SizeBeams sizes the main frame beam and the secondary beam from the
// long span (m).
func SizeBeams(longSpan float64) []BeamResult {
	return []BeamResult{
		sizeBeam("Main frame beam", "L/12", longSpan, MainBeamSpanRatio, true),
		sizeBeam("Secondary beam", "L/16", longSpan, SecondaryBeamSpanRatio, false),
	}
}

func sizeBeam(member, formula string, span, spanRatio float64, frame bool) BeamResult {
	reqH := span * 1000 / spanRatio
	h := roundUp(reqH, BeamStep)

	reqB := BeamWidthRatio * h
	b := max(MinBeamWidth, roundUp(reqB, BeamStep))
	if frame {
		b = deepBeamWidth(h, b)
	}

	return BeamResult{
		Member:         member,
		Formula:        formula,
		Span:           span,
		RequiredHeight: reqH,
		Height:         h,
		RequiredWidth:  reqB,
		Width:          b,
		Ratio:          ratio(h, reqH),
		Status:         check(h, reqH),
	}
}

// deepBeamWidth widens frame beams of DeepBeamHeight or more.
func deepBeamWidth(height, width float64) float64 {
	if height >= DeepBeamHeight && width < DeepBeamMinWidth {
		return DeepBeamMinWidth
	}
	return width
}
