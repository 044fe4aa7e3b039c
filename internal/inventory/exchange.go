package inventory

import "github.com/vovakirdan/cave-loot/internal/core"

type exchangeStep int

const (
	stepChoose exchangeStep = iota
	stepFraction
	stepNotice
	stepDone
)

// Exchange walks one found item through its prompts: the eligibility-gated
// choice, the fraction submenu for a partial take, and the capacity notice
// when a partial take was clamped. Every path ends in exactly one Outcome.
type Exchange struct {
	backpack *Backpack
	offer    Offer
	step     exchangeStep
	outcome  Outcome

	// fillWhenBound makes Take Part fill the backpack exactly, without the
	// submenu, when the whole item does not fit.
	fillWhenBound bool
}

// NewExchange gates item against the backpack and opens the choice prompt.
func NewExchange(b *Backpack, item Item, fillWhenBound bool) *Exchange {
	return &Exchange{
		backpack:      b,
		offer:         b.Offer(item),
		fillWhenBound: fillWhenBound,
		outcome:       Outcome{Decision: SkipItem(), Item: item},
	}
}

// Item returns the item on offer.
func (e *Exchange) Item() Item {
	return e.offer.Item
}

// Done reports whether the exchange has settled.
func (e *Exchange) Done() bool {
	return e.step == stepDone
}

// Outcome returns what happened. Before Done it reports a skip.
func (e *Exchange) Outcome() Outcome {
	return e.outcome
}

// Prompt returns the prompt for the current step.
func (e *Exchange) Prompt() core.Prompt {
	switch e.step {
	case stepFraction:
		return FractionPrompt(e.offer.Item)
	case stepNotice:
		return ClampNotice(e.outcome)
	default:
		return e.offer.Prompt(e.backpack)
	}
}

// Answer feeds the selected option index, or core.Dismissed, to the current
// step. A dismissed or out-of-range answer skips. If the backpack rejects
// the decision the exchange settles as a skip and the error is returned for
// logging.
func (e *Exchange) Answer(index int) error {
	switch e.step {
	case stepChoose:
		switch e.offer.ChoiceAt(index) {
		case TakeAll:
			return e.apply(TakeWhole())
		case TakePartial:
			item := e.offer.Item
			if e.fillWhenBound && e.backpack.Remaining() < item.Weight {
				return e.apply(TakeShare(FillFraction(e.backpack.Remaining(), item.Weight)))
			}
			e.step = stepFraction
		default:
			e.step = stepDone
		}
	case stepFraction:
		f, ok := FractionAt(index)
		if !ok {
			e.step = stepDone
			return nil
		}
		return e.apply(TakeShare(f))
	case stepNotice:
		e.step = stepDone
	}
	return nil
}

func (e *Exchange) apply(d Decision) error {
	out, err := e.backpack.Apply(e.offer.Item, d)
	if err != nil {
		e.step = stepDone
		return err
	}
	e.outcome = out
	if out.Clamped {
		e.step = stepNotice
	} else {
		e.step = stepDone
	}
	return nil
}
