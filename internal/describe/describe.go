// Package describe derives the three reader-facing description fields for a
// trace record from static first-match-wins string rules.
package describe

import (
	"fmt"
	"strings"

	"github.com/dukaforge/tracemap/pkg/types"
)

// definitionRules maps a known parent context to its hand-authored triple.
var definitionRules = map[string]types.Descriptions{
	types.ContextEntityGroup: {
		Layman:       "Enemy spawn group that controls which zombie types appear together during gameplay",
		Technical:    "Spawn group definition with entity composition and probability weights",
		PlayerImpact: "Affects enemy difficulty and variety during horde nights and random spawns",
	},
	types.ContextItem: {
		Layman:       "Item that players can find, craft, or use from their inventory menu",
		Technical:    "Item class definition containing stats, properties, and behavior handlers",
		PlayerImpact: "Provides tools, weapons, or resources needed for survival and progression",
	},
	types.ContextBlock: {
		Layman:       "Building block or placeable object that players can use in construction",
		Technical:    "Block definition with material properties, collision data, and placement rules",
		PlayerImpact: "Supplies building materials or functional blocks for base construction",
	},
	types.ContextEntityClass: {
		Layman:       "Living creature, zombie, or NPC that moves and interacts in the world",
		Technical:    "Entity class with AI behavior tree, animation controller, and stat modifiers",
		PlayerImpact: "Determines enemy threats to fight or friendly NPCs to interact with",
	},
	types.ContextRecipe: {
		Layman:       "Crafting recipe showing what materials combine to create new items",
		Technical:    "Recipe schema defining input requirements, crafting time, and output results",
		PlayerImpact: "Enables crafting of new items from collected resources",
	},
	types.ContextQuest: {
		Layman:       "Mission or objective that rewards players for completing specific tasks",
		Technical:    "Quest definition with objective tracking, reward data, and completion triggers",
		PlayerImpact: "Offers rewards and experience for completing missions",
	},
}

// keywordRule matches a property name against a keyword group.
type keywordRule struct {
	keywords []string
	desc     types.Descriptions
}

// keywordRules is ordered; the first rule whose keyword appears in the
// lowercased property name wins, so "IconSortOrder" resolves as an icon
// property, not a sort one.
var keywordRules = []keywordRule{
	{
		keywords: []string{"icon"},
		desc: types.Descriptions{
			Layman:       "Controls what icon image appears in inventory menus",
			Technical:    "Asset path reference to sprite texture resource for UI display",
			PlayerImpact: "Changes what picture you see in inventory slots",
		},
	},
	{
		keywords: []string{"model", "mesh"},
		desc: types.Descriptions{
			Layman:       "Points to the 3D model file displayed in the game world",
			Technical:    "Prefab asset path linking to Unity GameObject mesh instance",
			PlayerImpact: "Affects visual appearance when placed in the world",
		},
	},
	{
		keywords: []string{"color", "tint"},
		desc: types.Descriptions{
			Layman:       "Changes the visual color tint of this item or block",
			Technical:    "RGB color value applied to material shader tinting",
			PlayerImpact: "Alters the color you see on icons or placed blocks",
		},
	},
	{
		keywords: []string{"sort"},
		desc: types.Descriptions{
			Layman:       "Determines where this appears when sorting inventory menus",
			Technical:    "Integer sort order value for UI list positioning algorithm",
			PlayerImpact: "Changes where items appear when scrolling menus",
		},
	},
	{
		keywords: []string{"damage"},
		desc: types.Descriptions{
			Layman:       "Controls how much damage this deals to enemies or blocks",
			Technical:    "Numeric damage modifier applied in combat calculations",
			PlayerImpact: "Increases or decreases effectiveness in combat",
		},
	},
	{
		keywords: []string{"health"},
		desc: types.Descriptions{
			Layman:       "Sets the durability or hit points before breaking",
			Technical:    "Maximum hit point value for entity or block durability",
			PlayerImpact: "Determines how durable items are before breaking",
		},
	},
	{
		keywords: []string{"sound"},
		desc: types.Descriptions{
			Layman:       "Specifies which audio file plays during this action",
			Technical:    "Audio clip reference for event-triggered sound playback",
			PlayerImpact: "Provides audio feedback for player actions",
		},
	},
	{
		keywords: []string{"desc"},
		desc: types.Descriptions{
			Layman:       "Shows description text when hovering over this item",
			Technical:    "Localization key reference for UI tooltip description string",
			PlayerImpact: "Shows helpful information in item tooltips",
		},
	},
	{
		keywords: []string{"tag"},
		desc: types.Descriptions{
			Layman:       "Adds keywords that affect system interactions with this item",
			Technical:    "String array enabling feature flags and system recognition",
			PlayerImpact: "Affects compatibility with perks, mods, and systems",
		},
	},
	{
		keywords: []string{"stack"},
		desc: types.Descriptions{
			Layman:       "Sets how many of this item can fit in one inventory slot",
			Technical:    "Maximum item count per inventory slot constraint",
			PlayerImpact: "Controls inventory space efficiency",
		},
	},
}

// genericDesc covers entity types other than definition and property_name.
var genericDesc = types.Descriptions{
	Layman:       "Configuration data that affects gameplay systems",
	Technical:    "Configuration data structure in XML game format",
	PlayerImpact: "Affects core gameplay systems and balance",
}

// Resolve returns the description triple for a trace row. It is total and
// deterministic: every input maps to three non-empty strings.
func Resolve(entityType, entityName, parentContext string) types.Descriptions {
	switch entityType {
	case types.EntityTypeDefinition:
		if d, ok := definitionRules[parentContext]; ok {
			return d
		}
		return types.Descriptions{
			Layman:       fmt.Sprintf("Game configuration that defines how this %s functions in-game", parentContext),
			Technical:    fmt.Sprintf("XML definition node containing %s configuration parameters", parentContext),
			PlayerImpact: "Influences gameplay mechanics and player experience",
		}
	case types.EntityTypePropertyName:
		nameLower := strings.ToLower(entityName)
		for _, rule := range keywordRules {
			for _, kw := range rule.keywords {
				if strings.Contains(nameLower, kw) {
					return rule.desc
				}
			}
		}
		return types.Descriptions{
			Layman:       fmt.Sprintf("Property that configures how this %s behaves in the game", parentContext),
			Technical:    fmt.Sprintf("XML attribute controlling %s behavior parameters", parentContext),
			PlayerImpact: fmt.Sprintf("Modifies how this %s functions during gameplay", parentContext),
		}
	default:
		return genericDesc
	}
}
