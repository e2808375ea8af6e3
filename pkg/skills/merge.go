package skills

// Merge combines a base collection with override collections into a fresh
// map, keyed by skill name. Every override entry replaces an existing entry
// with the same name, so when several collections define a name, the last
// one wins. Inputs are never mutated; the skills themselves are shared, not
// copied.
func Merge(base map[string]*Skill, overrides ...map[string]*Skill) map[string]*Skill {
	merged := make(map[string]*Skill, len(base))
	for name, skill := range base {
		merged[name] = skill
	}
	for _, override := range overrides {
		for name, skill := range override {
			merged[name] = skill
		}
	}
	return merged
}
