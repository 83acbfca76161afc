package matcher

import "fmt"

// Config holds the matching policy knobs. The three-pass structure is
// fixed; these tune the tolerance windows and the confidence each pass
// assigns to its matches.
type Config struct {
	// AmountTolerance is the maximum absolute difference between two
	// amounts still considered equal. It absorbs floating-point noise,
	// not genuine cent differences.
	AmountTolerance float64

	// ExactDateToleranceDays is the date window of the exact pass.
	// Zero means calendar-date equality.
	ExactDateToleranceDays int

	// FuzzyDateToleranceDays is the date window of the fuzzy-date pass,
	// in whole calendar days.
	FuzzyDateToleranceDays int

	ConfidenceExact       float64
	ConfidenceFuzzyDate   float64
	ConfidenceDescription float64

	// MinDescriptionLength is the minimum normalized description length
	// required on both sides before the substring comparison in the
	// description pass. Zero lets a description that normalizes to the
	// empty string match anything with an equal amount and type.
	MinDescriptionLength int
}

// DefaultConfig returns the standard matching policy.
func DefaultConfig() Config {
	return Config{
		AmountTolerance:        0.01,
		ExactDateToleranceDays: 0,
		FuzzyDateToleranceDays: 3,
		ConfidenceExact:        1.0,
		ConfidenceFuzzyDate:    0.9,
		ConfidenceDescription:  0.7,
		MinDescriptionLength:   1,
	}
}

// Validate checks that the policy values are internally consistent.
func (c Config) Validate() error {
	if c.AmountTolerance < 0 {
		return fmt.Errorf("amount tolerance must be non-negative, got %v", c.AmountTolerance)
	}
	if c.ExactDateToleranceDays < 0 || c.FuzzyDateToleranceDays < 0 {
		return fmt.Errorf("date tolerances must be non-negative")
	}
	if c.FuzzyDateToleranceDays < c.ExactDateToleranceDays {
		return fmt.Errorf("fuzzy date tolerance (%d) must not be tighter than the exact one (%d)",
			c.FuzzyDateToleranceDays, c.ExactDateToleranceDays)
	}
	if c.MinDescriptionLength < 0 {
		return fmt.Errorf("minimum description length must be non-negative, got %d", c.MinDescriptionLength)
	}
	for _, conf := range []float64{c.ConfidenceExact, c.ConfidenceFuzzyDate, c.ConfidenceDescription} {
		if conf <= 0 || conf > 1 {
			return fmt.Errorf("confidence values must be in (0, 1], got %v", conf)
		}
	}
	return nil
}
