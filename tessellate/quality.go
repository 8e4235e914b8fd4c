package tessellate

// Quality is a named tessellation precision level. Each level maps to
// a fixed curve-flattening tolerance in em units; higher levels
// produce more triangles.
type Quality int

const (
	// QualityMinimal is the coarsest level, for distant shadows.
	QualityMinimal Quality = iota

	// QualityVeryLow trades most curve fidelity for triangle count.
	QualityVeryLow

	// QualityLow is suitable for small or fast-moving text.
	QualityLow

	// QualityMedium balances fidelity and triangle count.
	QualityMedium

	// QualityHigh is the default level.
	QualityHigh

	// QualityVeryHigh is for large close-up text.
	QualityVeryHigh

	// QualityUltraHigh is the finest level.
	QualityUltraHigh
)

// DefaultQuality is the level used when none is configured.
const DefaultQuality = QualityHigh

// Tolerance returns the curve-flattening tolerance for the level, in
// em units. Unknown levels fall back to the default.
func (q Quality) Tolerance() float64 {
	switch q {
	case QualityMinimal:
		return 0.02
	case QualityVeryLow:
		return 0.01
	case QualityLow:
		return 0.005
	case QualityMedium:
		return 1e-3
	case QualityHigh:
		return 1e-4
	case QualityVeryHigh:
		return 1e-5
	case QualityUltraHigh:
		return 1e-6
	default:
		return DefaultQuality.Tolerance()
	}
}

// String returns a string representation of the quality level.
func (q Quality) String() string {
	switch q {
	case QualityMinimal:
		return "Minimal"
	case QualityVeryLow:
		return "VeryLow"
	case QualityLow:
		return "Low"
	case QualityMedium:
		return "Medium"
	case QualityHigh:
		return "High"
	case QualityVeryHigh:
		return "VeryHigh"
	case QualityUltraHigh:
		return "UltraHigh"
	default:
		return "Unknown"
	}
}
