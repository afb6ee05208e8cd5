package response_models

// NamedItem is the {id, name} pair served to the cascading selects.
type NamedItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
