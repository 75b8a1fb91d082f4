package quickroll

// MaxStandardDCLevel is the highest level with a standard DC
const MaxStandardDCLevel = 25

var standardDCByLevel = [MaxStandardDCLevel + 1]int{
	14, 15, 16, 18, 19, 20, 22, 23, 24, 26,
	27, 28, 30, 31, 32, 34, 35, 36, 38, 39,
	40, 42, 44, 46, 48, 50,
}

// StandardDC returns the standard DC for a level between 0 and 25.
// Levels outside that range are not clamped.
func StandardDC(level int) (int, bool) {
	if level < 0 || level > MaxStandardDCLevel {
		return 0, false
	}
	return standardDCByLevel[level], true
}
