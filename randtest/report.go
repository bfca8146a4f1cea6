package randtest

// Verdict is the outcome of one significance test.
type Verdict struct {
	Level    float64 `json:"level"`
	Critical float64 `json:"critical"`
	Reject   bool    `json:"reject"`
}

// Report collects both tests over one sample.
type Report struct {
	Samples      int       `json:"samples"`
	ChiSquare    float64   `json:"chi_square"`
	ChiVerdicts  []Verdict `json:"chi_verdicts"`
	KSSamples    int       `json:"ks_samples"`
	KS           KS        `json:"ks"`
	KSVerdicts   []Verdict `json:"ks_verdicts"`
	Distribution []int     `json:"distribution"`
}

// Run applies the chi-square test to every value and the Kolmogorov-Smirnov
// test to the first ksSamples of them (all of them when ksSamples is zero
// or larger than the sample).
func Run(values []float64, ksSamples int) (*Report, error) {
	counts, err := Histogram(values, Bins)
	if err != nil {
		return nil, err
	}
	chi, err := ChiSquare(values, Bins)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Samples:      len(values),
		ChiSquare:    chi,
		Distribution: counts,
	}
	for _, level := range ChiSquareLevels {
		crit, _ := ChiSquareCritical(level)
		r.ChiVerdicts = append(r.ChiVerdicts, Verdict{Level: level, Critical: crit, Reject: chi > crit})
	}

	if ksSamples <= 0 || ksSamples > len(values) {
		ksSamples = len(values)
	}
	ks, err := KolmogorovSmirnov(values[:ksSamples])
	if err != nil {
		return nil, err
	}
	r.KSSamples = ksSamples
	r.KS = ks
	for _, alpha := range KSAlphas {
		crit, _ := KSCritical(alpha, ksSamples)
		r.KSVerdicts = append(r.KSVerdicts, Verdict{Level: alpha, Critical: crit, Reject: ks.D > crit})
	}
	return r, nil
}
