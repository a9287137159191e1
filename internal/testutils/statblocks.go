package testutils

// Statblock fixtures as they arrive from a copy and paste out of a PDF or
// web page. Wrapped lines, hyphenated breaks and typographic quotes are
// kept on purpose.

// GoblinLines is the smallest useful statblock
var GoblinLines = []string{
	"Goblin",
	"Small Humanoid, Any Alignment",
	"Armor Class 15 (leather armor, shield)",
	"Hit Points 27 (5d6 + 10)",
	"Speed 30 ft.",
}

// OrcWarriorLines wraps its languages line so the tail reads like a title,
// and prints its traits after the challenge line.
var OrcWarriorLines = []string{
	"Orc Warrior",
	"Medium Humanoid (Orc), Chaotic Evil",
	"Armor Class 13 (hide armor)",
	"Hit Points 15 (2d8 + 6)",
	"Speed 30 ft.",
	"Languages Common, Elvish,",
	"Orc.",
	"Challenge ½ (100 XP)",
	"Aggressive. As a bonus action, the orc moves.",
	"ACTIONS",
	"Greataxe. Melee Weapon Attack: +5 to hit, reach 5 ft., one target. Hit: 9 (1d12 + 3) slashing damage.",
}

// OSRScout is an abbreviated statblock with a composite first line
const OSRScout = `Goblin Scout
HP 11; AC 15 (leather, shield); Speed 30’
Str +0, Dex +2, Con +1, Int +0, Wis −1, Cha −1
CR 1/4; XP 50
Sneaky. The scout can hide as a bonus action.`

// Cursespitter is a goblin with cantrip actions, a shouted title ("To Me!") and
// a split CR and XP line.
const Cursespitter = `Goblin Cursespitter
Small Humanoid (Goblin), Any Alignment
Armor Class 15 (leather armor, shield)
Hit Points 27 (5d6 + 10)
Speed 30 ft., climb 20 ft.
STR
DEX
CON
INT
WIS
CHA
8 (−1)
14 (+2)
14 (+2)
10 (+0)
10 (+0)
15 (+2)
Saving Throws Wis +2
Skills Stealth +4
Senses darkvision 60 ft., passive Perception 10
Languages Common, Goblin
Proficiency Bonus +2
Crafty. The cursespitter doesn’t provoke opportunity attacks
when they move out of an enemy’s reach.
ACTIONS
Toxic Touch (Cantrip). Melee or Ranged Spell Attack: +4 to
hit, reach 5 ft. or range 30 ft., one target. Hit: 7 (2d6) poison
damage, and the target must succeed on a DC 12 Constitu-
tion saving throw or be poisoned for 1 minute (save ends at
end of turn).
Brittle Bone Hex (Cantrip). The cursespitter chooses one
creature they can see within 60 feet of them. The target’s
bones are wracked with pain until the end of their next turn.
The first time the target willingly moves or uses an action, a
bonus action, or a reaction before then, they must succeed
on a DC 12 Constitution saving throw or take 9 (2d8)
necrotic damage.
To Me! The cursespitter chooses up to two willing crea-
tures they can see within 30 feet of them. Each creature
is teleported to an unoccupied space within 5 feet of the
cursespitter.
Dizzying Hex (2/Day; 1st-Level Spell). The cursespitter
chooses one creature they can see within 60 feet of them.
The target must make a DC 12 Wisdom saving throw. On a
failed save, the target falls prone and can’t stand back up for
1 minute (save ends at end of turn).
REACTIONS
Cowardly Commander. When a creature the cursespitter
can see hits them with an attack, the cursespitter chooses
a willing ally within 5 feet of them. The attack hits the
ally instead.
CR 1 Controller
200 XP`

// Ruinant has a racial line split in two, a souls roll and a wrapped senses
// line.
const Ruinant = `Ruinant
Medium Fiend (Demon, Category 2),
Typically Chaotic Evil
Armor Class 15 (natural armor)
Hit Points 105 (14d8 + 42)
Souls 2 (1d4)
Speed 60 ft.
STR
DEX
CON
INT
WIS
CHA
15 (+2)
18 (+4)
16 (+3)
14 (+2)
18 (+4)
16 (+3)
Saving Throws Wis +7, Cha +6
Skills Deception +6, Perception +7
Damage Resistances necrotic
Senses darkvision 120 ft., soulsight 30 ft., passive
Perception 17
Languages Abyssal, Common, telepathy 120 ft.
Proficiency Bonus +3
Lethe. When the ruinant’s soul count is 0, they have adv antage
on attack rolls, disadvantage on saving throws, and their Intel-
ligence score becomes 3 (−4). Additionally, the ruinant must
use their movement on each of their turns to move as close
as possible to the nearest creature they can sense with their
soulsight, and then if they are able, they must use their action
to attack and attempt to kill that creature. The ruinant can’t act
with any other purpose until they add 1 to their soul count.
Soul Devourer. When the ruinant reduces a creature who isn’t
a Construct or an Undead to 0 hit points or deals damage to a
dying creature, the creature must make a DC 11 Wisdom sav-
ing throw. On a failed save, the ruinant consumes the creature’s
soul and adds 1 to the ruinant’s soul count. A creature whose
soul is consumed in this way immediately dies, and they can’t
be restored to life by any means short of a wish spell.
ACTIONS
Multiattack. The ruinant makes three Bloodletting
Claws attacks.
Bloodletting Claws. Melee Weapon Attack: +7 to hit, reach
5 ft., one creature. Hit: 7 (1d6 + 4) piercing damage plus
7 (2d6) necrotic damage, and the target can’t take reactions
this turn.
Salt Wounds (Costs 1 Soul). The ruinant chooses up to three
creatures they can see within 60 feet of them who don’t have
all their hit points. Each target must make a DC 15 Constitution
saving throw, taking 16 (3d10) necrotic damage on a failed
save, or half as much damage on a successful one.
REACTIONS
Corrupt Healing (Costs 1 Soul). When a creature within
60 feet of the ruinant regains hit points from a power, a spell,
or a similar supernatural effect, the ruinant corrupts the effect.
The target regains no hit points, and the target and each of
the ruinant’s enemies within 5 feet of the ruinant must succeed
on a DC 15 Constitution saving throw or take necrotic damage
equal to half the number of hit points the effect would
have restored.`

// LadyEmer carries bonus actions, reactions and villain actions.
const LadyEmer = `Lady Emer
Medium Monstrosity, Lawful Evil
Armor Class 17
Hit Points 190 (20d8 + 100)
Speed 40 ft.
STR
DEX
CON
INT
WIS
CHA
18 (+4)
24 (+7)
20 (+5)
16 (+3)
17 (+3)
18 (+4)
Saving Throws Str +8, Dex +11, Con +9, Wis +7
Skills Athletics +8, Deception +8, Perception +7,
Persuasion +8, Stealth +11, Survival +7
Damage Immunities poison
Condition Immunities poisoned
Senses darkvision 60 ft., passive Perception 17
Languages Common, Elvish
Proficiency Bonus +4
Stone Sacrifice (3/Day). When Emer fails a saving throw,
she can choose to succeed instead by ending the effects of her
Stone Gaze on a creature of her choice within 300 feet of her.
ACTIONS
Multiattack. Emer uses Pinning Shot or makes three attacks
using Snake Bite, Longbow, or both. She also uses Stone Gaze
or Envenomed Stone, if available.
Snake Bite. Melee Weapon Attack: +11 to hit, reach 10 ft.,
one creature. Hit: 17 (5d6) poison damage, and the target
must succeed on a DC 17 Constitution saving throw or be
poisoned until the end of Emer’s next turn. While poisoned
in this way, the target can’t take reactions.
Longbow. Ranged Weapon Attack: +11 to hit, range
150/600 ft., one target. Hit: 11 (1d8 + 7) piercing damage
plus 14 (4d6) poison damage.
Pinning Shot. Emer makes three Longbow attacks against a
creature touching the ground within 150 feet of her. If at least
two of those attacks hit, the target is restrained by arrows
pinning their limbs to the ground. A creature restrained in
this way or another creature who can reach them can use an
action to pull out the arrows and end the condition.
Stone Gaze. Emer fires beams of energy from her eyes at
up to three creatures she can see within 60 feet of her. Each
target must succeed on a DC 17 Constitution saving throw
or begin turning to stone (save ends at end of turn). While
turning to stone, a creature’s speed is reduced by 10 feet
and they have disadvantage on Dexterity checks and saving
throws. If a creature who is turning to stone is targeted by this
action again and fails their save, their speed is reduced by
another 10 feet and they are dazed until the effect ends.
If a creature who is turning to stone and dazed in this way
is targeted by this action again and fails their save, they are
petrified and can no longer make saving throws to end the
effects of Stone Gaze. The petrification lasts until the creature
is restored by Emer’s Stone Sacrifice trait, a cure ailment
power of 4th order or higher, a greater restoration spell,
or a similar supernatural effect.
Envenomed Stone (Recharge 5–6). Emer utters an ancient
hex. Each creature within 60 feet of her who is being turned
to stone by her Stone Gaze must make a DC 17 Constitution
saving throw, taking 44 (8d10) poison damage on a failed save,
or half as much damage on a successful one.
BONUS ACTIONS
Mesmerizing Eyes. The glowing eyes of Emer’s snakes gaze
at one creature Emer can see within 60 feet of her. If the
target can see Emer, they must succeed on a DC 17 Wisdom
saving throw or be charmed until the start of the target’s next
turn. A target charmed in this way must immediately use their
reaction, if available, to move up to their speed in a direction
of Emer’s choice.
REACTIONS
Blinding Mucus. When a creature Emer can see within 5 feet
of her hits her with a melee attack, Emer spits venom at their
eyes. The target must succeed on a DC 17 Dexterity saving
throw or take 7 (2d6) acid damage and be blinded until the
start of their next turn.
VILLAIN ACTIONS
Emer has three villain actions. She can take each action once
during an encounter after an enemy’s turn. She can take these
actions in any order but can use only one per round.
Action 1: I See You! Emer uses Stone Gaze against each
enemy she can see within 60 feet of her.
Action 2: Medusa’s Evolution. Emer grows wings from her
back, gaining a flying speed of 40 feet, then she moves
up to her speed without provoking opportunity attacks.
After 1 minute, the wings crumble to dust and her flying
speed is lost.
Action 3: Stone Puppets. Emer mentally manipulates the
stone in each creature who is being turned to stone by her
Stone Gaze. Emer and each of those creatures move up to
their speed then make a weapon attack against a creature
of Emer’s choice (no action required).
CR 11 Solo
7,200 XP`

// UberNPC exercises spellcasting, legendary, mythic, lair and utility blocks
// along with qualified damage clauses.
const UberNPC = `Uber NPC (lil bit of everything)
Medium undead, any evil alignment
Armor Class 17 (natural armor)
Hit Points 135 (18d8 + 54)
Speed 30 ft.
STR
DEX
CON
INT
WIS
CHA
11 (+0) 16 (+3) 16 (+3) 20 (+5) 14 (+2) 16 (+3)
Saving Throws Con +10, Int +12, Wis +9
Skills Arcana +18, History +12, Insight +9, Perception +9
Damage Vulnerabilities piercing from magic weapons
wielded by good creatures
Damage Resistances cold, lightning, necrotic
Damage Immunities poison; bludgeoning, piercing, and
slashing from nonmagical attacks
Condition Immunities charmed, exhaustion, frightened,
paralyzed, poisoned
Senses truesight 120 ft., passive Perception 19
Languages Common plus up to five other languages
Challenge 21 (33,000 XP)
Legendary Resistance (3/Day). If the lich fails a saving
throw, it can choose to succeed instead.
Rejuvenation. If it has a phylactery, a destroyed lich
gains a new body in 1d10 days, regaining all its hit
points and becoming active again. The new body
appears within 5 feet of the phylactery.
Spellcasting. The lich is an 18th-­‐level spellcaster. Its
spellcasting ability is Intelligence (spell save DC 20, +12
to hit with spell attacks). The lich has the following
wizard spells prepared:
Cantrips (at will): mage hand, prestidigitation
1st level (4 slots): detect magic, magic missile, shield
2nd level (3 slots): acid arrow, detect thoughts,
invisibility, mirror image
3rd level (3 slots): animate dead, counterspell, dispel
magic, fireball
4th level (3 slots): blight, dimension door
5th level (3 slots): cloudkill
6th level (1 slot): disintegrate, globe of invulnerability
7th level (1 slot): finger of death, plane shift
8th level (1 slot): dominate monster, power word stun
9th level (1 slot): power word kill
Turn Resistance. The lich has advantage on saving
throws against any effect that turns undead.
Innate Spellcasting. The rakshasa’s innate spellcasting
ability is Charisma (spell save DC 18, +10 to hit with
spell attacks). The rakshasa can innately cast the
following spells, requiring no material components:
At will: disguise self, minor illusion
3/day each: charm person, major image, suggestion
1/day each: dominate person, fly, true
seeing
Actions
Multiattack. The ruinant makes three Bloodletting
Claws attacks.
Bloodletting Claws. Melee Weapon Attack: +7 to hit, reach
5 ft., one creature. Hit: 7 (1d6 + 4) piercing damage plus
7 (2d6) necrotic damage, and the target can’t take reactions
this turn.
Javelin. Melee or Ranged Weapon Attack: +4 to hit,
reach 5 ft. or range 30/120 ft., one target. Hit: 9 (2d6 +
2) piercing damage in melee or 5 (1d6 + 2) piercing
damage at range.
Paralyzing Touch. Melee Spell Attack: +12 to hit, reach
5 ft., one creature. Hit: 10 (3d6) cold damage. The
target must succeed on a DC 18 Constitution saving
throw or be paralyzed for 1 minute. The target can
repeat the saving throw at the end of each of its turns,
ending the effect on itself on a success.
Legendary Actions
The lich can take 3 legendary actions, choosing from
the options below. Only one legendary action option
can be used at a time and only at the end of another
creature’s turn. The lich regains spent legendary
actions at the start of its turn.
Cantrip. The lich casts a cantrip.
Frightening Gaze (Costs 2 Actions). The lich fixes its
gaze on one creature it can see within 10 feet of it.
The target must succeed on a DC 18 Wisdom saving
throw against this magic or become frightened for 1
minute. The frightened target can repeat the saving
throw at the end of each of its turns, ending the
effect on itself on a success. If a target’s saving throw
is successful or the effect ends for it, the target is
immune to the lich’s gaze for the next 24 hours.
Disrupt Life (Costs 3 Actions). Each non-­‐undead
creature within 20 feet of the lich must make a DC
18 Constitution saving throw against this magic,
taking 21 (6d6) necrotic damage on a failed save, or
half as much damage on a successful one.
Mythic Actions

If Arasta’s mythic trait is active, she can use the options below as legendary actions, as long as she has temporary hit points from her Armor of Spiders.

Swipe. Arasta makes two attacks with her claws.

Web of Hair (Costs 2 Actions). Arasta recharges Web of Hair and uses it.

Nyx Weave (Costs 2 Actions). Each creature restrained by Arasta’s Web of Hair must succeed on a DC 21 Constitution saving throw, or the creature takes 26 (4d12) force damage and any spell of 6th level or lower on it ends.
BONUS ACTIONS
Mesmerizing Eyes. The glowing eyes of Emer’s snakes gaze
at one creature Emer can see within 60 feet of her. If the
target can see Emer, they must succeed on a DC 17 Wisdom
saving throw or be charmed until the start of the target’s next
turn. A target charmed in this way must immediately use their
reaction, if available, to move up to their speed in a direction
of Emer’s choice.
REACTIONS
Blinding Mucus. When a creature Emer can see within 5 feet
of her hits her with a melee attack, Emer spits venom at their
eyes. The target must succeed on a DC 17 Dexterity saving
throw or take 7 (2d6) acid damage and be blinded until the
start of their next turn.
VILLAIN ACTIONS
Emer has three villain actions. She can take each action once
during an encounter after an enemy’s turn. She can take these
actions in any order but can use only one per round.
Action 1: I See You! Emer uses Stone Gaze against each
enemy she can see within 60 feet of her.
Action 2: Medusa’s Evolution. Emer grows wings from her
back, gaining a flying speed of 40 feet, then she moves
up to her speed without provoking opportunity attacks.
After 1 minute, the wings crumble to dust and her flying
speed is lost.
Action 3: Stone Puppets. Emer mentally manipulates the
stone in each creature who is being turned to stone by her
Stone Gaze. Emer and each of those creatures move up to
their speed then make a weapon attack against a creature
of Emer’s choice (no action required).

Lair Actions


While Strahd is in Castle Ravenloft, he can take lair actions as long as he isn’t incapacitated.

On initiative count 20 (losing initiative ties), Strahd can take one of the following lair action options, or forgo using any of them in that round:

    Until initiative count 20 of the next round, Strahd can pass through solid walls, doors, ceilings, and floors as if they weren’t there.
    Strahd targets any number of doors and windows that he can see, causing each one to either open or close as he wishes. Closed doors can be magically locked (needing a successful DC 20 Strength check to force open) until Strahd chooses to end the effect, or until Strahd uses this lair action again.
    Strahd summons the angry spirit of one who has died in the castle. The apparition appears next to a hostile creature that Strahd can see, makes an attack against that creature, and then disappears. The apparition has the statistics of a specter.
    Strahd targets one Medium or smaller creature that casts a shadow. The target’s shadow must be visible to Strahd and within 30 feet of him. If the target fails a DC 17 Charisma saving throw, its shadow detaches from it and becomes a shadow that obeys Strahd’s commands, acting on initiative count 20. A greater restoration spell or a remove curse spell cast on the target restores its natural shadow, but only if its undead shadow has been destroyed.

UTILITY SPELLS
In addition to any other spells in this stat block, the hag can
cast the following spells, using Charisma as the spellcasting
ability (spell save DC 14):
At will: alter self A, dancing lights A
3/day each: animal messenger A, legend lore +, speak
with animals A
1/day: scrying +`
