package skills

import "github.com/invopop/jsonschema"

// MetadataSchema reflects the frontmatter schema skills must conform to.
// Editors and CI pipelines can use it to validate SKILL.md frontmatter
// before discovery ever sees the file.
func MetadataSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(Metadata{})
}
