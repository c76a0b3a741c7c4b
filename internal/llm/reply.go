package llm

import (
	"encoding/json"
	"errors"
)

// MenuReply is the model's answer, decoded from the extracted JSON
// object. Slot values may be null; dish names are unverified at this
// point and must never reach the customer as-is.
type MenuReply struct {
	Menu struct {
		Menu1    *string `json:"menu1"`
		Menu2    *string `json:"menu2"`
		Menu3    *string `json:"menu3"`
		Pasta    *string `json:"pasta"`
		Dessert  *string `json:"dessert"`
		Beverage *string `json:"beverage"`
	} `json:"menu"`
	Reasoning string `json:"reasoning"`
}

// ParseMenuReply extracts and decodes the first JSON object in the
// model output.
func ParseMenuReply(output string) (*MenuReply, error) {
	raw, err := ExtractJSON(output)
	if err != nil {
		return nil, err
	}

	var reply MenuReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, errors.New("invalid model JSON output")
	}
	return &reply, nil
}

// SlotNames flattens the reply into slot-keyed dish names, skipping
// null slots.
func (r *MenuReply) SlotNames() map[string]string {
	out := make(map[string]string)
	put := func(slot string, name *string) {
		if name != nil && *name != "" {
			out[slot] = *name
		}
	}
	put("menu1", r.Menu.Menu1)
	put("menu2", r.Menu.Menu2)
	put("menu3", r.Menu.Menu3)
	put("pasta", r.Menu.Pasta)
	put("dessert", r.Menu.Dessert)
	put("beverage", r.Menu.Beverage)
	return out
}
