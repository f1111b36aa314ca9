package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dukaforge/tracemap/pkg/types"
)

func TestResolveDefinitionContexts(t *testing.T) {
	tests := []struct {
		context    string
		wantLayman string
		wantTech   string
		wantImpact string
	}{
		{
			context:    "entity_group",
			wantLayman: "Enemy spawn group that controls which zombie types appear together during gameplay",
			wantTech:   "Spawn group definition with entity composition and probability weights",
			wantImpact: "Affects enemy difficulty and variety during horde nights and random spawns",
		},
		{
			context:    "item",
			wantLayman: "Item that players can find, craft, or use from their inventory menu",
			wantTech:   "Item class definition containing stats, properties, and behavior handlers",
			wantImpact: "Provides tools, weapons, or resources needed for survival and progression",
		},
		{
			context:    "block",
			wantLayman: "Building block or placeable object that players can use in construction",
			wantTech:   "Block definition with material properties, collision data, and placement rules",
			wantImpact: "Supplies building materials or functional blocks for base construction",
		},
		{
			context:    "entity_class",
			wantLayman: "Living creature, zombie, or NPC that moves and interacts in the world",
			wantTech:   "Entity class with AI behavior tree, animation controller, and stat modifiers",
			wantImpact: "Determines enemy threats to fight or friendly NPCs to interact with",
		},
		{
			context:    "recipe",
			wantLayman: "Crafting recipe showing what materials combine to create new items",
			wantTech:   "Recipe schema defining input requirements, crafting time, and output results",
			wantImpact: "Enables crafting of new items from collected resources",
		},
		{
			context:    "quest",
			wantLayman: "Mission or objective that rewards players for completing specific tasks",
			wantTech:   "Quest definition with objective tracking, reward data, and completion triggers",
			wantImpact: "Offers rewards and experience for completing missions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			d := Resolve(types.EntityTypeDefinition, "anything", tt.context)
			assert.Equal(t, tt.wantLayman, d.Layman)
			assert.Equal(t, tt.wantTech, d.Technical)
			assert.Equal(t, tt.wantImpact, d.PlayerImpact)
		})
	}
}

func TestResolveDefinitionFallback(t *testing.T) {
	d := Resolve(types.EntityTypeDefinition, "progression", "progression")
	assert.Equal(t, "Game configuration that defines how this progression functions in-game", d.Layman)
	assert.Equal(t, "XML definition node containing progression configuration parameters", d.Technical)
	assert.Equal(t, "Influences gameplay mechanics and player experience", d.PlayerImpact)
}

func TestResolvePropertyKeywords(t *testing.T) {
	tests := []struct {
		name       string
		entityName string
		wantLayman string
	}{
		{"icon", "CustomIcon", "Controls what icon image appears in inventory menus"},
		{"model", "ModelPath", "Points to the 3D model file displayed in the game world"},
		{"mesh", "MeshFile", "Points to the 3D model file displayed in the game world"},
		{"color", "ParticleColor", "Changes the visual color tint of this item or block"},
		{"tint", "TintColor", "Changes the visual color tint of this item or block"},
		{"sort", "SortOrder", "Determines where this appears when sorting inventory menus"},
		{"damage", "EntityDamage", "Controls how much damage this deals to enemies or blocks"},
		{"health", "MaxHealth", "Sets the durability or hit points before breaking"},
		{"sound", "SoundDestroy", "Specifies which audio file plays during this action"},
		{"desc", "DescriptionKey", "Shows description text when hovering over this item"},
		{"tag", "FilterTags", "Adds keywords that affect system interactions with this item"},
		{"stack", "Stacknumber", "Sets how many of this item can fit in one inventory slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(types.EntityTypePropertyName, tt.entityName, "item")
			assert.Equal(t, tt.wantLayman, d.Layman)
		})
	}
}

// Keyword priority is positional, not longest-match: a name containing
// several keywords resolves to the earliest rule.
func TestResolvePropertyKeywordPriority(t *testing.T) {
	d := Resolve(types.EntityTypePropertyName, "IconSortOrder", "item")
	assert.Equal(t, "Controls what icon image appears in inventory menus", d.Layman)
	assert.Equal(t, "Asset path reference to sprite texture resource for UI display", d.Technical)
	assert.Equal(t, "Changes what picture you see in inventory slots", d.PlayerImpact)
}

func TestResolvePropertyCaseInsensitive(t *testing.T) {
	upper := Resolve(types.EntityTypePropertyName, "DAMAGEFALLOFF", "item")
	lower := Resolve(types.EntityTypePropertyName, "damagefalloff", "item")
	assert.Equal(t, upper, lower)
	assert.Equal(t, "Controls how much damage this deals to enemies or blocks", upper.Layman)
}

func TestResolvePropertyFallback(t *testing.T) {
	d := Resolve(types.EntityTypePropertyName, "Weight", "block")
	assert.Equal(t, "Property that configures how this block behaves in the game", d.Layman)
	assert.Equal(t, "XML attribute controlling block behavior parameters", d.Technical)
	assert.Equal(t, "Modifies how this block functions during gameplay", d.PlayerImpact)
}

func TestResolveGenericEntityType(t *testing.T) {
	d := Resolve("xpath_patch", "whatever", "whatever")
	assert.Equal(t, "Configuration data that affects gameplay systems", d.Layman)
	assert.Equal(t, "Configuration data structure in XML game format", d.Technical)
	assert.Equal(t, "Affects core gameplay systems and balance", d.PlayerImpact)
}

func TestResolveAlwaysNonEmpty(t *testing.T) {
	inputs := []struct{ etype, name, ctx string }{
		{"definition", "", ""},
		{"property_name", "", ""},
		{"", "", ""},
		{"definition", "x", "unknown_ctx"},
		{"property_name", "NoKeywordHere", "vehicle"},
		{"other", "y", "z"},
	}
	for _, in := range inputs {
		d := Resolve(in.etype, in.name, in.ctx)
		assert.NotEmpty(t, d.Layman)
		assert.NotEmpty(t, d.Technical)
		assert.NotEmpty(t, d.PlayerImpact)
	}
}
