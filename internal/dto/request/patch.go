package request

// BookingPatch is the admin edit payload. It stays a raw map because the
// contract distinguishes three states per field: absent (keep stored
// value), present-null (clear it), and present-with-value (overwrite).
// A struct with pointer fields cannot represent the first two separately.
type BookingPatch map[string]any

// Has reports whether the key appeared in the payload at all, even with a
// null value.
func (p BookingPatch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Value returns the raw decoded value for key.
func (p BookingPatch) Value(key string) any {
	return p[key]
}

// ItemList returns the decoded items array when the payload carries one.
// Presence of the key, even with an empty array, means "replace the item
// list"; absence means "leave items untouched".
func (p BookingPatch) ItemList() ([]map[string]any, bool) {
	raw, ok := p["items"]
	if !ok {
		return nil, false
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	items := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items, true
}
