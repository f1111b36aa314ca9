package types

// Entity types recognized by the description resolver. Rows whose
// entity_type is neither of these receive the generic descriptions.
const (
	EntityTypeDefinition   = "definition"
	EntityTypePropertyName = "property_name"
)

// Parent contexts with hand-authored description triples.
const (
	ContextEntityGroup = "entity_group"
	ContextItem        = "item"
	ContextBlock       = "block"
	ContextEntityClass = "entity_class"
	ContextRecipe      = "recipe"
	ContextQuest       = "quest"
)

// TraceRecord is one row of the trace table: a single reverse-engineered
// game entity (item, block, recipe, entity class, XML property, ...).
// Rows are read-only; this tool never writes them back.
type TraceRecord struct {
	ID              int64   // Ordering key; defines the stable paging order.
	EntityType      string  // "definition", "property_name", or other.
	EntityName      string  // Name of the entity or property.
	ParentContext   string  // Enclosing context, e.g. "item" or "block".
	CodeTrace       string  // Code/XML excerpt the entity was traced from.
	UsageExamples   *string // Nullable.
	RelatedEntities *string // Nullable.
	GameContext     string  // Game system the entity belongs to.
}

// Descriptions is the triple of derived natural-language fields, each
// targeting a different reader audience.
type Descriptions struct {
	Layman       string
	Technical    string
	PlayerImpact string
}

// ExportRecord is the flat JSONL output object: the source row fields plus
// the three derived descriptions. Nullable fields marshal as JSON null.
type ExportRecord struct {
	EntityType           string  `json:"entity_type"`
	EntityName           string  `json:"entity_name"`
	ParentContext        string  `json:"parent_context"`
	CodeTrace            string  `json:"code_trace"`
	UsageExamples        *string `json:"usage_examples"`
	RelatedEntities      *string `json:"related_entities"`
	GameContext          string  `json:"game_context"`
	LaymanDescription    string  `json:"layman_description"`
	TechnicalDescription string  `json:"technical_description"`
	PlayerImpact         string  `json:"player_impact"`
}

// NewExportRecord assembles an export record from a source row and its
// resolved descriptions.
func NewExportRecord(rec TraceRecord, d Descriptions) ExportRecord {
	return ExportRecord{
		EntityType:           rec.EntityType,
		EntityName:           rec.EntityName,
		ParentContext:        rec.ParentContext,
		CodeTrace:            rec.CodeTrace,
		UsageExamples:        rec.UsageExamples,
		RelatedEntities:      rec.RelatedEntities,
		GameContext:          rec.GameContext,
		LaymanDescription:    d.Layman,
		TechnicalDescription: d.Technical,
		PlayerImpact:         d.PlayerImpact,
	}
}
