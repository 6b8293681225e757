package quiz

import "fmt"

// OptionPresentation is one display order of a choice question's options.
// Order[k] is the canonical index of the option shown at position k.
type OptionPresentation struct {
	Options []string
	Order   []int
}

// PresentOptions shuffles options for display. A new order is drawn on every
// call; it is never stored.
func PresentOptions(options []string) OptionPresentation {
	identity := make([]int, len(options))
	for i := range identity {
		identity[i] = i
	}
	order := Shuffle(identity)

	shown := make([]string, len(order))
	for k, idx := range order {
		shown[k] = options[idx]
	}
	return OptionPresentation{Options: shown, Order: order}
}

// Resolve returns the canonical index of displayed position k.
func (p OptionPresentation) Resolve(k int) (int, error) {
	idx, ok := resolve(p.Order, k)
	if !ok {
		return 0, fmt.Errorf("displayed position %d out of range [0,%d)", k, len(p.Order))
	}
	return idx, nil
}

// ResolveDisplayed resolves displayed position k through an order echoed back
// by a client. The order must be a permutation of 0..len(order)-1.
func ResolveDisplayed(order []int, k int) (int, error) {
	if err := validateOrder(order, len(order)); err != nil {
		return 0, err
	}
	return OptionPresentation{Order: order}.Resolve(k)
}

func resolve(order []int, k int) (int, bool) {
	if k < 0 || k >= len(order) {
		return 0, false
	}
	return order[k], true
}

func validateOrder(order []int, optionCount int) error {
	if len(order) != optionCount {
		return fmt.Errorf("%w: got %d entries for %d options", ErrInvalidOptionOrder, len(order), optionCount)
	}
	seen := make([]bool, optionCount)
	for _, idx := range order {
		if idx < 0 || idx >= optionCount || seen[idx] {
			return fmt.Errorf("%w: entry %d", ErrInvalidOptionOrder, idx)
		}
		seen[idx] = true
	}
	return nil
}
