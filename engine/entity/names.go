package entity

import (
	"strconv"
	"strings"

	"github.com/nathoo/expresscore/types"
)

var characterNames = [types.CharacterCount]string{
	"Cath", "Anna", "August", "Cond1", "Cond2", "HeadWait", "Waiter1",
	"Waiter2", "Cook", "TrainM", "Tatiana", "Vassili", "Alexei", "Abbot",
	"Milos", "Vesna", "Ivo", "Salko", "Kronos", "Kahina", "Francois",
	"Madame", "Monsieur", "Rebecca", "Sophie", "Mahmud", "Yasmin", "Hadija",
	"Alouan", "Police", "Max", "Master", "Clerk", "TableA", "TableB",
	"TableC", "TableD", "TableE", "TableF", "Mitchell",
}

// CharacterName returns the display name of c.
func CharacterName(c types.CharacterID) string {
	if c < 0 || c >= types.CharacterCount {
		return "Character" + strconv.Itoa(int(c))
	}
	return characterNames[c]
}

// ParseCharacter accepts a character name (any case) or a numeric id.
func ParseCharacter(s string) (types.CharacterID, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= int(types.CharacterCount) {
			return 0, false
		}
		return types.CharacterID(n), true
	}
	for i, name := range characterNames {
		if strings.EqualFold(name, s) {
			return types.CharacterID(i), true
		}
	}
	return 0, false
}
