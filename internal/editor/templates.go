package editor

const defaultTierColor = "#cccccc"

type TemplateTier struct {
	Name  string
	Color string
}

// Templates are the built-in tier shell presets.
var Templates = map[string][]TemplateTier{
	"classic": {
		{Name: "S", Color: "#ff7f7e"},
		{Name: "A", Color: "#ffbf7f"},
		{Name: "B", Color: "#ffdf80"},
		{Name: "C", Color: "#ffff7f"},
		{Name: "D", Color: "#bfff7f"},
	},
	"good-bad": {
		{Name: "Good", Color: "#7fff7f"},
		{Name: "Okay", Color: "#ffff7f"},
		{Name: "Bad", Color: "#ff7f7e"},
	},
	"stars": {
		{Name: "5 Stars", Color: "#ffd700"},
		{Name: "4 Stars", Color: "#ffdf80"},
		{Name: "3 Stars", Color: "#ffff7f"},
		{Name: "2 Stars", Color: "#dfdfdf"},
		{Name: "1 Star", Color: "#bfbfbf"},
	},
}
