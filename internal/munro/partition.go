package munro

// Partition splits peaks into the rows whose classification exactly equals
// labelA and those equal to labelB. Rows matching neither label are
// dropped. Either result may be empty; whether emptiness is an error is
// the caller's call.
func Partition(peaks []Peak, labelA, labelB string) (a, b []Peak) {
	for _, p := range peaks {
		switch p.Classification {
		case labelA:
			a = append(a, p)
		case labelB:
			b = append(b, p)
		}
	}
	return a, b
}
