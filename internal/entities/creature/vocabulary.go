package creature

import "strings"

// SpeedHover is the pseudo movement mode recorded when a speed line says "(hover)"
const SpeedHover = "hover"

// SpeedWalk names the unlabelled first speed on a speed line
const SpeedWalk = "speed"

// PassivePerception names the passive perception entry in senses
const PassivePerception = "perception"

// Abilities in statblock order
var Abilities = []string{"str", "dex", "con", "int", "wis", "cha"}

// Sizes from smallest to largest
var Sizes = []string{
	"fine", "diminutive", "tiny", "small", "medium",
	"large", "huge", "gargantuan", "colossal",
}

// Types is the closed creature type vocabulary
var Types = []string{
	"aberration", "beast", "celestial", "construct", "dragon", "elemental",
	"fey", "fiend", "giant", "humanoid", "monstrosity", "ooze", "plant", "undead",
}

// DamageTypes is the closed damage type vocabulary
var DamageTypes = []string{
	"bludgeoning", "piercing", "slashing", "acid", "cold", "fire",
	"lightning", "necrotic", "poison", "psychic", "radiant", "thunder", "force",
}

// Conditions is the closed condition vocabulary
var Conditions = []string{
	"blinded", "charmed", "deafened", "diseased", "exhaustion", "frightened",
	"grappled", "incapacitated", "invisible", "paralyzed", "petrified",
	"poisoned", "prone", "restrained", "stunned", "unconscious",
}

// Senses is the closed vocabulary of ranged senses
var Senses = []string{"darkvision", "blindsight", "tremorsense", "truesight"}

// Skills is the closed skill vocabulary
var Skills = []string{
	"acrobatics", "animal handling", "arcana", "athletics", "deception",
	"history", "insight", "intimidation", "investigation", "medicine",
	"nature", "perception", "performance", "persuasion", "religion",
	"sleight of hand", "stealth", "survival",
}

// LanguageNames is the closed language vocabulary
var LanguageNames = []string{
	"aarakocra", "abyssal", "aquan", "auran", "celestial", "common", "deep",
	"draconic", "druidic", "dwarvish", "elvish", "giant", "gith", "gnoll",
	"gnomish", "goblin", "halfling", "ignan", "infernal", "orc", "primordial",
	"sylvan", "terran", "cant", "undercommon",
}

// languageAliases maps printed names onto vocabulary keywords
var languageAliases = map[string]string{
	"deep speech":   "deep",
	"thieves' cant": "cant",
	"thieves’ cant": "cant",
	"thieves cant":  "cant",
}

// LanguageKeyword resolves a printed language name to its vocabulary keyword
func LanguageKeyword(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := languageAliases[key]; ok {
		return alias, true
	}
	if contains(LanguageNames, key) {
		return key, true
	}
	return "", false
}

// TypeKeyword resolves a printed creature type, accepting swarm plurals
// such as "beasts".
func TypeKeyword(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if contains(Types, key) {
		return key, true
	}
	if singular := strings.TrimSuffix(key, "s"); singular != key && contains(Types, singular) {
		return singular, true
	}
	return "", false
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
