package inventory

import (
	"fmt"

	"github.com/vovakirdan/cave-loot/internal/core"
)

// Offer is an item presented to the player together with the choices the
// backpack allowed at the moment it was found.
type Offer struct {
	Item    Item
	Choices []Choice
}

// Offer gates the item against the current load.
func (b *Backpack) Offer(item Item) Offer {
	return Offer{Item: item, Choices: b.Eligible(item).List()}
}

// Prompt builds the decision prompt for the offer.
func (o Offer) Prompt(b *Backpack) core.Prompt {
	options := make([]string, len(o.Choices))
	for i, c := range o.Choices {
		options[i] = c.String()
	}
	return core.Prompt{
		Title: fmt.Sprintf("You found %s!", o.Item.Name),
		Lines: []string{
			fmt.Sprintf("Value: %d  Weight: %d  Category: %s", o.Item.Value, o.Item.Weight, o.Item.Category),
			fmt.Sprintf("Backpack: %d/%d", b.Weight(), b.Capacity()),
		},
		Options: options,
	}
}

// ChoiceAt maps a prompt answer to a choice. Dismissal and out-of-range
// answers map to Skip.
func (o Offer) ChoiceAt(index int) Choice {
	if index < 0 || index >= len(o.Choices) {
		return Skip
	}
	return o.Choices[index]
}

// FractionPrompt builds the partial-take submenu for an item.
func FractionPrompt(item Item) core.Prompt {
	options := make([]string, len(MenuFractions))
	for i, f := range MenuFractions {
		options[i] = f.Label()
	}
	return core.Prompt{
		Title:   "Take Part",
		Lines:   []string{fmt.Sprintf("How much of the %s?", item.Name)},
		Options: options,
		Default: 2,
	}
}

// FractionAt maps a submenu answer to a fraction. ok is false for a
// dismissed or out-of-range answer.
func FractionAt(index int) (Fraction, bool) {
	if index < 0 || index >= len(MenuFractions) {
		return Fraction{}, false
	}
	return MenuFractions[index], true
}

// ClampNotice is the message shown when a partial take was cut down to the
// remaining capacity.
func ClampNotice(out Outcome) core.Prompt {
	return core.Prompt{
		Title:   "Backpack Limit Reached",
		Lines:   []string{fmt.Sprintf("You can only take %d weight due to backpack limits.", out.Weight)},
		Options: []string{"OK"},
	}
}
