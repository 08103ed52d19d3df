package admin

// ListConfig describes the admin list screen of one entity: which
// columns it shows, which fields it can filter on and which fields the
// search box matches. The table is static so an external admin tool
// can introspect it.
type ListConfig struct {
	Entity       string
	ListDisplay  []string
	ListFilter   []string
	SearchFields []string
}

var ListConfigs = map[string]ListConfig{
	"user": {
		Entity:       "user",
		ListDisplay:  []string{"username", "email", "is_staff"},
		ListFilter:   []string{"is_staff"},
		SearchFields: []string{"username", "email"},
	},
	"category": {
		Entity:       "category",
		ListDisplay:  []string{"is_active", "name", "parent_category"},
		ListFilter:   []string{"is_active", "parent_category"},
		SearchFields: []string{"name"},
	},
	"product": {
		Entity:       "product",
		ListDisplay:  []string{"name", "description", "stock", "price"},
		ListFilter:   []string{"stock", "price"},
		SearchFields: []string{"name", "description"},
	},
	"feature": {
		Entity:       "feature",
		ListDisplay:  []string{"name", "input_type", "unit"},
		ListFilter:   []string{"input_type", "unit"},
		SearchFields: []string{"name"},
	},
	"feature_value": {
		Entity:       "feature_value",
		ListDisplay:  []string{"feature", "value"},
		ListFilter:   []string{"feature"},
		SearchFields: []string{"value"},
	},
	"product_feature": {
		Entity:       "product_feature",
		ListDisplay:  []string{"product", "feature", "value_selected", "value_custom", "value"},
		ListFilter:   []string{"product", "feature"},
		SearchFields: []string{},
	},
}

func ListConfigFor(entity string) ListConfig {
	return ListConfigs[entity]
}
