package models

// ProjectType is one of the fixed categories offered in the form dropdown.
// Color is only used to style the option.
type ProjectType struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ProjectTypes in dropdown order.
var ProjectTypes = []ProjectType{
	{Label: "Vente", Color: "#FF6B6B"},
	{Label: "Achat", Color: "#4ECDC4"},
	{Label: "Location", Color: "#45B7D1"},
	{Label: "Gestion", Color: "#96CEB4"},
	{Label: "Syndic", Color: "#FFEEAD"},
	{Label: "Orpi PRO", Color: "#D4A5A5"},
	{Label: "Location + Gestion", Color: "#9AC1D9"},
	{Label: "Recrutement", Color: "#FFD93D"},
	{Label: "CGI", Color: "#6C5B7B"},
}

func IsProjectType(label string) bool {
	for _, p := range ProjectTypes {
		if p.Label == label {
			return true
		}
	}
	return false
}
