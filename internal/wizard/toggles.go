package wizard

import (
	"errors"

	"github.com/deepharbor/substrip/internal/messages"
)

// Toggles carries the two stripping decisions. Nil means undecided: not
// flagged on the command line and not pinned in substrip.toml.
type Toggles struct {
	Upgrades *bool
	Items    *bool
}

// Resolved reports whether both toggles are already decided.
func (t Toggles) Resolved() bool {
	return t.Upgrades != nil && t.Items != nil
}

// Resolve fills any undecided toggle by asking the user. Without a terminal
// it fails with guidance instead of guessing.
func Resolve(ui UI, t Toggles) (upgrades bool, items bool, err error) {
	if t.Resolved() {
		return *t.Upgrades, *t.Items, nil
	}
	if ui == nil {
		return false, false, errors.New(messages.StripTogglesNonInteractive)
	}

	if t.Upgrades != nil {
		upgrades = *t.Upgrades
	} else if err = ui.Confirm(messages.StripPromptUpgrades, &upgrades); err != nil {
		return false, false, err
	}

	if t.Items != nil {
		items = *t.Items
	} else if err = ui.Confirm(messages.StripPromptItems, &items); err != nil {
		return false, false, err
	}

	return upgrades, items, nil
}
