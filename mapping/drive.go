package mapping

import "fmt"

// MaxPasses bounds the number of passes Drive performs for a single
// visitation.
const MaxPasses = 16

// PassFunc performs one complete visitation pass, ending with VisitEnd,
// and returns VisitEnd's result.
type PassFunc func(v Visitor) (bool, error)

// Drive runs pass until v accepts a pass as final. Visitors without
// NeedsMultiplePasses that ask for another pass fail with
// ErrUnexpectedRestart.
func Drive(v Visitor, pass PassFunc) error {
	multi := v.Flags().Has(NeedsMultiplePasses)

	for n := 1; ; n++ {
		done, err := pass(v)
		if err != nil {
			return fmt.Errorf("pass %d: %w", n, err)
		}
		if done {
			return nil
		}
		if !multi {
			return fmt.Errorf("pass %d: %w", n, ErrUnexpectedRestart)
		}
		if n >= MaxPasses {
			return fmt.Errorf("%w: gave up after %d", ErrTooManyPasses, n)
		}
		log.Debugf("visitor requested pass %d", n+1)
	}
}
