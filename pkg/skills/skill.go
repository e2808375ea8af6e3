// Package skills discovers, validates, and merges agent skills.
//
// A skill is a directory packaging specialized instructions for an agent: a
// SKILL.md file with YAML frontmatter plus optional supporting content,
// conventionally under scripts/, references/ and assets/. Discovery scans a
// root directory with one subdirectory per skill and turns each well-formed
// entry into a *Skill; malformed entries are skipped with a diagnostic so a
// single bad directory never poisons the rest of the root. Collections from
// several roots combine with Merge, where later collections win by name.
//
// Skills are shared by pointer and treated as immutable once discovered;
// nothing in this package mutates a *Skill after Scan returns it.
package skills

// SkillFileName is the skill definition file inside each skill directory.
// The name is matched case-sensitively.
const SkillFileName = "SKILL.md"

// Metadata holds the YAML frontmatter of a SKILL.md document.
//
// Name and Description are required. The remaining fields are optional and
// pass through untouched so newer skill authors can ship fields this tool
// does not interpret yet.
type Metadata struct {
	// Name identifies the skill. It must be lowercase alphanumeric plus
	// hyphens, at most 64 bytes, and match the skill directory name.
	Name string `yaml:"name" json:"name" mapstructure:"name" jsonschema:"required,pattern=^[a-z0-9-]+$,maxLength=64,description=Unique skill identifier matching the skill directory name"`
	// Description explains what the skill does and when an agent should
	// reach for it. At most 1024 characters.
	Description string `yaml:"description" json:"description" mapstructure:"description" jsonschema:"required,description=What the skill does and when to use it"`
	// License is free-form license information.
	License string `yaml:"license,omitempty" json:"license,omitempty" mapstructure:"license,omitempty" jsonschema:"description=License covering the skill content"`
	// Compatibility describes environment requirements, if any.
	Compatibility string `yaml:"compatibility,omitempty" json:"compatibility,omitempty" mapstructure:"compatibility,omitempty" jsonschema:"description=Environment requirements for the skill"`
	// Metadata is an open key-value bag for fields outside this schema.
	Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty" mapstructure:"metadata,omitempty" jsonschema:"description=Additional uninterpreted key-value metadata"`
	// AllowedTools is a space-delimited list of tool names the skill wants
	// access to. It is carried verbatim; enforcement happens elsewhere.
	AllowedTools string `yaml:"allowed_tools,omitempty" json:"allowed_tools,omitempty" mapstructure:"allowed_tools,omitempty" jsonschema:"description=Space-delimited tool names the skill may use"`
}

// Skill is a discovered skill: parsed frontmatter, the markdown body that
// follows it, and the directory the skill lives in. Path is the anchor for
// ResolvePath; callers must not join onto it by hand.
type Skill struct {
	Metadata Metadata
	Body     string
	Path     string
}

// Name returns the skill name from the frontmatter.
func (s *Skill) Name() string {
	return s.Metadata.Name
}

// Description returns the skill description from the frontmatter.
func (s *Skill) Description() string {
	return s.Metadata.Description
}
