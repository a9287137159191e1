package patterns

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockPattern pairs a block with the pattern that opens it. Opening
// patterns are anchored at the start of a line so later mentions of the
// same keyword inside prose do not open a block.
type BlockPattern struct {
	ID      BlockID
	Pattern *regexp.Regexp
}

// blockPatterns is evaluated top to bottom and the first match wins
var blockPatterns = []BlockPattern{
	{BlockArmor, regexp.MustCompile(`(?i)^(?:armou?r class|ac)\s\d+`)},
	{BlockActions, regexp.MustCompile(`(?i)^actions$`)},
	{BlockAbilities, regexp.MustCompile(`(?i)^(?:str|dex|con|int|wis|cha)(?:\s|$)`)},
	{BlockBonusActions, regexp.MustCompile(`(?i)^bonus actions$`)},
	{BlockChallenge, regexp.MustCompile(`(?i)^(?:challenge rating|challenge|cr)\s?(?:\d|½)`)},
	{BlockConditionImmunities, regexp.MustCompile(`(?i)^condition immunities\s`)},
	{BlockDamageImmunities, regexp.MustCompile(`(?i)^(?:damage )?immunities\s`)},
	{BlockDamageResistances, regexp.MustCompile(`(?i)^(?:damage )?resistances\s`)},
	{BlockDamageVulnerabilities, regexp.MustCompile(`(?i)^(?:damage )?vulnerabilities\s`)},
	{BlockHealth, regexp.MustCompile(`(?i)^(?:hit points|hp)\s\d+`)},
	{BlockLairActions, regexp.MustCompile(`(?i)^lair actions$`)},
	{BlockLanguages, regexp.MustCompile(`(?i)^languages\s`)},
	{BlockLegendaryActions, regexp.MustCompile(`(?i)^legendary actions$`)},
	{BlockMythicActions, regexp.MustCompile(`(?i)^mythic actions$`)},
	{BlockProficiencyBonus, regexp.MustCompile(`(?i)^proficiency bonus\s\+`)},
	{BlockRacialDetails, RacialDetails},
	{BlockReactions, regexp.MustCompile(`(?i)^reactions$`)},
	{BlockSavingThrows, regexp.MustCompile(`(?i)^(?:saving throws|saves)\s(?:str|dex|con|int|wis|cha)`)},
	{BlockSenses, regexp.MustCompile(`(?i)^senses\s.*\d`)},
	{BlockSkills, regexp.MustCompile(`(?i)^skills\s.*[+\-−–]\s?\d`)},
	{BlockSpeed, regexp.MustCompile(`(?i)^speed\s\d+\s?(?:ft|feet|'|’)`)},
	{BlockSouls, regexp.MustCompile(`(?i)^souls\s\d+`)},
	{BlockTraits, regexp.MustCompile(`(?i)^traits$`)},
	{BlockUtilitySpells, regexp.MustCompile(`(?i)^utility spells$`)},
	{BlockVillainActions, regexp.MustCompile(`(?i)^villain actions$`)},
	{BlockInitiative, regexp.MustCompile(`(?i)^initiative\s[+\-−–]?\d`)},
}

// BlockPatterns returns the opening patterns in priority order
func BlockPatterns() []BlockPattern {
	out := make([]BlockPattern, len(blockPatterns))
	copy(out, blockPatterns)
	return out
}

// Top section field patterns
var (
	// RacialDetails is "Medium swarm of Tiny beasts (shapechanger), unaligned"
	RacialDetails = regexp.MustCompile(`(?i)^(?P<size>fine|diminutive|tiny|small|medium|large|huge|gargantuan|colossal)` +
		`(?:\s+swarm of (?P<swarmsize>tiny|small|medium|large|huge))?` +
		`\s+(?P<type>[a-z]+)` +
		`(?:[,\s]*\((?P<race>[^)]*)\))?` +
		`(?:[,\s]+(?P<alignment>[a-z][a-z\s\-]*))?`)

	ArmorDetails      = regexp.MustCompile(`(?P<ac>\d+)(?:\s?\((?P<armortype>[^)]+)\))?`)
	RollDetails       = regexp.MustCompile(`(?P<value>\d+)\s?(?:\((?P<formula>\d+d\d+(?:\s?[+\-−–]\s?\d+)?)\))?`)
	ChallengeRating   = regexp.MustCompile(`(?P<cr>½|\d+\s?/\s?\d+|\d+)`)
	ChallengeXP       = regexp.MustCompile(`(?i)(?P<xp>\d[\d,]*)\s?xp|\bxp\s(?P<xpafter>\d[\d,]*)`)
	ChallengeRole     = regexp.MustCompile(`(?i)\bcr\s(?:½|\d+/\d+|\d+)\s(?P<role>[a-z]+)`)
	SpeedDetails      = regexp.MustCompile(`(?i)(?P<name>[a-z]+)\s?(?P<value>\d+)`)
	SenseDetails      = regexp.MustCompile(`(?i)^(?P<name>darkvision|blindsight|tremorsense|truesight)\s(?P<value>\d+)`)
	PassivePerception = regexp.MustCompile(`(?i)passive perception\s(?P<value>\d+)`)
	SkillDetails      = regexp.MustCompile(`(?i)\b(?P<name>acrobatics|animal handling|arcana|athletics|deception|history|insight|intimidation|investigation|medicine|nature|perception|performance|persuasion|religion|sleight of hand|stealth|survival)\s(?P<modifier>[+\-−–]\s?\d+)`)
	AbilityNames      = regexp.MustCompile(`(?i)\b(?:str|dex|con|int|wis|cha)\b`)
	AbilityValues     = regexp.MustCompile(`(?P<base>\d+)\s?\((?P<modifier>[+\-−–]?\s?\d+)\)`)
	AbilityModifiers  = regexp.MustCompile(`(?i)\b(?P<name>str|dex|con|int|wis|cha)\s(?P<modifier>[+\-−–]\d+)`)
	AbilitySaves      = regexp.MustCompile(`(?i)\b(?P<name>str|dex|con|int|wis|cha)[a-z]*\s[+\-−–]\s?\d+`)
	InitiativeDetails = regexp.MustCompile(`(?P<modifier>[+\-−–]\s?\d+)`)
	DamageTypes       = regexp.MustCompile(`(?i)\b(?:bludgeoning|piercing|slashing|acid|cold|fire|lightning|necrotic|poison|psychic|radiant|thunder|force)\b`)
	ConditionTypes    = regexp.MustCompile(`(?i)\b(?:blinded|charmed|deafened|diseased|exhaustion|frightened|grappled|incapacitated|invisible|paralyzed|petrified|poisoned|prone|restrained|stunned|unconscious)\b`)
	NumberComma       = regexp.MustCompile(`(\d),(\d)`)
	OSRComposite      = regexp.MustCompile(`^HP\s*\d+[^;]*;\s*AC\s*\d+`)
)

// Prose patterns
var (
	// Title matches a whole sentence that reads as an entry header, such as
	// "Legendary Resistance (3/Day)." or "Web of Hair (Costs 2 Actions)."
	Title = regexp.MustCompile(`^[A-Z][\w\-+,;'’]+[\s\-]?` +
		`(?:(?:of|and|the|from|in|at|on|with|to|by|into)\s)?` +
		`(?:[\w\-+,;'’]+\s?){0,3}` +
		`(?:\([^)]+\))?[.!]$`)
	VillainActionHeader = regexp.MustCompile(`^Action\s(?P<number>\d):\s(?P<title>.+?[.!?])(?:\s+|$)`)
	SpellcastingKeyword = regexp.MustCompile(`(?i)\b(?:innate spellcasting|spellcasting)\b`)
	InnateKeyword       = regexp.MustCompile(`(?i)\binnate spellcasting\b`)
	SpellHeader         = regexp.MustCompile(`(?i)\b(?:at[ -]will|cantrips|[1-9](?:st|nd|rd|th)(?:[ -]level)?|\d+/day(?:\s+each)?)(?:\s*\([^)]*\))?\s*:`)
	SpellSlots          = regexp.MustCompile(`(?i)\((?P<slots>\d+)\s?slots?\)`)
	SpellAtWill         = regexp.MustCompile(`(?i)at[ -]will`)
	SpellAbility        = regexp.MustCompile(`(?i)spellcasting ability is (?P<ability>[a-z]+)|(?P<ability2>[a-z]+) as the spellcasting ability`)
	SpellSaveDC         = regexp.MustCompile(`(?i)spell save dc (?P<savedc>\d+)`)
	SpellcasterLevel    = regexp.MustCompile(`(?i)(?P<level>\d+)(?:st|nd|rd|th)[\s\-‐\x{00AD}]*level spellcaster`)
	InnateSingleSpell   = regexp.MustCompile(`(?i)innately cast (?P<spell>[a-z][a-z\s'’]*?)(?:\s\([^)]*\))?,`)
	Recharge            = regexp.MustCompile(`(?i)\(recharge (?P<recharge>\d)(?:\s?[–\-]\s?\d)?\)`)
	PerDay              = regexp.MustCompile(`(?i)(?P<perday>\d+)/day`)
	ActionCost          = regexp.MustCompile(`(?i)\((?:costs\s)?(?P<cost>\d+)\sactions?\)`)
	LegendaryCount      = regexp.MustCompile(`(?i)take (?P<count>\d+) legendary`)
	LairInitiative      = regexp.MustCompile(`(?i)initiative count (?P<count>\d+)`)
	LegendaryResistance = regexp.MustCompile(`(?i)^legendary resistance\s?\((?P<count>\d+)/day`)
	AttackBonus         = regexp.MustCompile(`(?i)(?P<bonus>[+\-−–]\d+) to hit`)
	Reach               = regexp.MustCompile(`(?i)reach (?P<reach>\d+) ?ft`)
	Range               = regexp.MustCompile(`(?i)range (?P<range>\d+)(?:/(?P<long>\d+))? ?ft`)
	SavingThrowDC       = regexp.MustCompile(`(?i)dc (?P<dc>\d+) (?P<ability>strength|dexterity|constitution|intelligence|wisdom|charisma) saving throw`)
	DamageRoll          = regexp.MustCompile(`(?i)(?P<value>\d+) \((?P<formula>\d+d\d+(?:\s?[+\-−–]\s?\d+)?)\) (?P<type>[a-z]+) damage`)
)

// Bullet marks a list item inside prose
const Bullet = "•"

// Named returns the named groups of the first match of re in s. Unmatched
// optional groups are absent from the map.
func Named(re *regexp.Regexp, s string) (map[string]string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	return groups(re, m), true
}

// NamedAll returns the named groups of every match of re in s
func NamedAll(re *regexp.Regexp, s string) []map[string]string {
	all := re.FindAllStringSubmatch(s, -1)
	out := make([]map[string]string, 0, len(all))
	for _, m := range all {
		out = append(out, groups(re, m))
	}
	return out
}

func groups(re *regexp.Regexp, m []string) map[string]string {
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || i >= len(m) || m[i] == "" {
			continue
		}
		out[name] = m[i]
	}
	return out
}

// NormalizeSign rewrites typographic minus signs and dashes to "-" and
// drops the space some sources print between a sign and its digits.
func NormalizeSign(s string) string {
	s = strings.NewReplacer("−", "-", "–", "-", "—", "-").Replace(s)
	if len(s) > 1 && (s[0] == '+' || s[0] == '-') {
		return s[:1] + strings.TrimSpace(s[1:])
	}
	return s
}

// Atoi parses a possibly signed integer after NormalizeSign. Malformed
// text yields 0 and false.
func Atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(NormalizeSign(strings.TrimSpace(s)), "+"))
	if err != nil {
		return 0, false
	}
	return n, true
}
