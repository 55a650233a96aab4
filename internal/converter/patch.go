package converter

// apply copies src into dst when the client sent the field.
func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
